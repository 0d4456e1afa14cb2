package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
)

// InitRouter wires repositories, services and controllers and registers
// every route. Auth endpoints live on the open /api group; everything else
// sits behind the bearer-token middleware.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, cfg *config.Config, logger *zap.Logger) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)
	txManager := repositories.NewTxManager(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	userRepo := repositories.NewUserRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	categoryRepo := repositories.NewCategoryRepository(dbConn)
	teamRepo := repositories.NewTeamRepository(dbConn)
	workCenterRepo := repositories.NewWorkCenterRepository(dbConn)
	technicianRepo := repositories.NewTechnicianRepository(dbConn)
	dashboardRepo := repositories.NewDashboardRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)

	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, logger)
	requestService := services.NewRequestService(requestRepo, cacheRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, cacheRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, cacheRepo, logger)
	teamService := services.NewTeamService(teamRepo, txManager, cacheRepo, logger)
	workCenterService := services.NewWorkCenterService(workCenterRepo, cacheRepo, logger)
	metaService := services.NewMetaService(
		equipmentRepo, categoryRepo, teamRepo, technicianRepo, workCenterRepo,
		cacheRepo, cfg.Cache.MetaTTL, logger,
	)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.Cache.DashboardTTL, logger)
	reportService := services.NewReportService(reportRepo, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	categoryCtrl := controllers.NewCategoryController(categoryService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	workCenterCtrl := controllers.NewWorkCenterController(workCenterService, logger)
	metaCtrl := controllers.NewMetaController(metaService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authCtrl)
	runUserRouter(secureGroup, userCtrl)
	runRequestRouter(secureGroup, requestCtrl)
	runEquipmentRouter(secureGroup, equipmentCtrl)
	runCategoryRouter(secureGroup, categoryCtrl)
	runTeamRouter(secureGroup, teamCtrl)
	runWorkCenterRouter(secureGroup, workCenterCtrl)
	runMetaRouter(secureGroup, metaCtrl)
	runDashboardRouter(secureGroup, dashboardCtrl)
	runReportRouter(secureGroup, reportCtrl)
}
