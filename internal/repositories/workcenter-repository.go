package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type dbWorkCenter struct {
	ID           uint64
	Name         string
	Department   sql.NullString
	Description  sql.NullString
	Tag          sql.NullString
	Alternatives sql.NullString
	CostPerHour  sql.NullFloat64
	Capacity     sql.NullFloat64
	OEE          sql.NullFloat64
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func nullFloatToPtr(v sql.NullFloat64) *float64 {
	if v.Valid {
		return &v.Float64
	}
	return nil
}

func (db *dbWorkCenter) ToDTO() dto.WorkCenterDTO {
	return dto.WorkCenterDTO{
		ID:           db.ID,
		Name:         db.Name,
		Department:   utils.NullStringToPtr(db.Department),
		Description:  utils.NullStringToPtr(db.Description),
		Tag:          utils.NullStringToPtr(db.Tag),
		Alternatives: utils.NullStringToPtr(db.Alternatives),
		CostPerHour:  nullFloatToPtr(db.CostPerHour),
		Capacity:     nullFloatToPtr(db.Capacity),
		OEE:          nullFloatToPtr(db.OEE),
		CreatedAt:    utils.FormatTime(db.CreatedAt),
		UpdatedAt:    utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

const (
	workCenterTable  = "work_centers"
	workCenterFields = "id, name, department, description, tag, alternatives, cost_per_hour, capacity_percentage, oee_target, created_at, updated_at"
)

type WorkCenterRepositoryInterface interface {
	GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error)
	GetWorkCenterRefs(ctx context.Context) ([]dto.RefItemDTO, error)
	CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error)
	DeleteWorkCenter(ctx context.Context, id uint64) error
}

type workCenterRepository struct{ storage *pgxpool.Pool }

func NewWorkCenterRepository(storage *pgxpool.Pool) WorkCenterRepositoryInterface {
	return &workCenterRepository{storage: storage}
}

func scanWorkCenter(row pgx.Row, db *dbWorkCenter) error {
	return row.Scan(
		&db.ID, &db.Name, &db.Department, &db.Description, &db.Tag,
		&db.Alternatives, &db.CostPerHour, &db.Capacity, &db.OEE,
		&db.CreatedAt, &db.UpdatedAt,
	)
}

func (r *workCenterRepository) GetWorkCenters(ctx context.Context) ([]dto.WorkCenterDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", workCenterFields, workCenterTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	centers := make([]dto.WorkCenterDTO, 0)
	for rows.Next() {
		var dbRow dbWorkCenter
		if err := scanWorkCenter(rows, &dbRow); err != nil {
			return nil, err
		}
		centers = append(centers, dbRow.ToDTO())
	}
	return centers, rows.Err()
}

func (r *workCenterRepository) GetWorkCenterRefs(ctx context.Context) ([]dto.RefItemDTO, error) {
	return queryRefItems(ctx, r.storage, workCenterTable)
}

func (r *workCenterRepository) CreateWorkCenter(ctx context.Context, payload dto.CreateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(name, department, description, tag, alternatives, cost_per_hour, capacity_percentage, oee_target)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`, workCenterTable, workCenterFields)

	var dbRow dbWorkCenter
	err := scanWorkCenter(r.storage.QueryRow(ctx, query,
		payload.Name, payload.Department.Ptr(), payload.Description.Ptr(),
		payload.Tag.Ptr(), payload.Alternatives.Ptr(), payload.CostPerHour,
		payload.Capacity, payload.OEE,
	), &dbRow)
	if err != nil {
		return nil, err
	}
	workCenterDTO := dbRow.ToDTO()
	return &workCenterDTO, nil
}

func (r *workCenterRepository) UpdateWorkCenter(ctx context.Context, id uint64, payload dto.UpdateWorkCenterDTO) (*dto.WorkCenterDTO, error) {
	query := fmt.Sprintf(`UPDATE %s SET
		name = $1, department = $2, description = $3, tag = $4, alternatives = $5,
		cost_per_hour = $6, capacity_percentage = $7, oee_target = $8, updated_at = NOW()
		WHERE id = $9 RETURNING %s`, workCenterTable, workCenterFields)

	var dbRow dbWorkCenter
	err := scanWorkCenter(r.storage.QueryRow(ctx, query,
		payload.Name, payload.Department.Ptr(), payload.Description.Ptr(),
		payload.Tag.Ptr(), payload.Alternatives.Ptr(), payload.CostPerHour,
		payload.Capacity, payload.OEE, id,
	), &dbRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	workCenterDTO := dbRow.ToDTO()
	return &workCenterDTO, nil
}

func (r *workCenterRepository) DeleteWorkCenter(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", workCenterTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewInvalidInputError("work center is referenced by equipment or requests")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
