package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
)

type DashboardRepositoryInterface interface {
	CountEquipment(ctx context.Context) (uint64, error)
	CountRequestsByStatus(ctx context.Context) ([]dto.CountByGroupDTO, error)
	CountRequestsByTeam(ctx context.Context) ([]dto.CountByGroupDTO, error)
}

type dashboardRepository struct{ storage *pgxpool.Pool }

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &dashboardRepository{storage: storage}
}

func (r *dashboardRepository) CountEquipment(ctx context.Context) (uint64, error) {
	var count uint64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM equipment").Scan(&count)
	return count, err
}

func (r *dashboardRepository) CountRequestsByStatus(ctx context.Context) ([]dto.CountByGroupDTO, error) {
	query, args, err := psql.
		Select("status", "COUNT(*)").
		From(requestTable).
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryGroups(ctx, query, args)
}

func (r *dashboardRepository) CountRequestsByTeam(ctx context.Context) ([]dto.CountByGroupDTO, error) {
	query, args, err := psql.
		Select("COALESCE(t.name, 'Unassigned')", "COUNT(*)").
		From(requestTable + " r").
		LeftJoin("teams t ON t.id = r.team_id").
		GroupBy("t.name").
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryGroups(ctx, query, args)
}

func (r *dashboardRepository) queryGroups(ctx context.Context, query string, args []interface{}) ([]dto.CountByGroupDTO, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]dto.CountByGroupDTO, 0)
	for rows.Next() {
		var g dto.CountByGroupDTO
		if err := rows.Scan(&g.Name, &g.Count); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
