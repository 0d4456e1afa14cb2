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

type dbEquipment struct {
	ID           uint64
	Name         string
	CategoryID   sql.NullInt64
	CategoryName sql.NullString
	SerialNumber sql.NullString
	TechnicianID sql.NullInt64
	EmployeeID   sql.NullInt64
	TeamID       sql.NullInt64
	WorkCenterID sql.NullInt64
	Description  sql.NullString
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
}

func (db *dbEquipment) ToDTO() dto.EquipmentDTO {
	out := dto.EquipmentDTO{
		ID:           db.ID,
		Name:         db.Name,
		CategoryID:   utils.NullInt64ToPtr(db.CategoryID),
		SerialNumber: utils.NullStringToPtr(db.SerialNumber),
		TechnicianID: utils.NullInt64ToPtr(db.TechnicianID),
		EmployeeID:   utils.NullInt64ToPtr(db.EmployeeID),
		TeamID:       utils.NullInt64ToPtr(db.TeamID),
		WorkCenterID: utils.NullInt64ToPtr(db.WorkCenterID),
		Description:  utils.NullStringToPtr(db.Description),
		CreatedAt:    utils.FormatTime(db.CreatedAt),
		UpdatedAt:    utils.NullTimeToEmptyString(db.UpdatedAt),
	}
	if db.CategoryID.Valid && db.CategoryName.Valid {
		out.Category = &dto.RefItemDTO{ID: uint64(db.CategoryID.Int64), Name: db.CategoryName.String}
	}
	return out
}

const (
	equipmentTable = "equipment"
	// e.* plus the joined category name, in scan order.
	equipmentFields = "e.id, e.name, e.category_id, c.name, e.serial_number, e.technician_id, e.employee_id, e.team_id, e.work_center_id, e.description, e.created_at, e.updated_at"
	equipmentJoin   = "equipment e LEFT JOIN equipment_categories c ON c.id = e.category_id"
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context) ([]dto.EquipmentDTO, error)
	GetEquipmentRefs(ctx context.Context) ([]dto.RefItemDTO, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type equipmentRepository struct{ storage *pgxpool.Pool }

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row, db *dbEquipment) error {
	return row.Scan(
		&db.ID, &db.Name, &db.CategoryID, &db.CategoryName, &db.SerialNumber,
		&db.TechnicianID, &db.EmployeeID, &db.TeamID, &db.WorkCenterID,
		&db.Description, &db.CreatedAt, &db.UpdatedAt,
	)
}

func (r *equipmentRepository) GetEquipment(ctx context.Context) ([]dto.EquipmentDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY e.id", equipmentFields, equipmentJoin)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.EquipmentDTO, 0)
	for rows.Next() {
		var dbRow dbEquipment
		if err := scanEquipment(rows, &dbRow); err != nil {
			return nil, err
		}
		items = append(items, dbRow.ToDTO())
	}
	return items, rows.Err()
}

func (r *equipmentRepository) GetEquipmentRefs(ctx context.Context) ([]dto.RefItemDTO, error) {
	return queryRefItems(ctx, r.storage, equipmentTable)
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE e.id = $1", equipmentFields, equipmentJoin)
	var dbRow dbEquipment
	if err := scanEquipment(r.storage.QueryRow(ctx, query, id), &dbRow); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	equipmentDTO := dbRow.ToDTO()
	return &equipmentDTO, nil
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf(`INSERT INTO %s
		(name, category_id, serial_number, technician_id, employee_id, team_id, work_center_id, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`, equipmentTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.Name, payload.CategoryID, payload.SerialNumber.Ptr(),
		payload.TechnicianID, payload.EmployeeID, payload.TeamID,
		payload.WorkCenterID, payload.Description.Ptr(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.NewInvalidInputError("referenced record does not exist")
		}
		return nil, err
	}
	return r.FindEquipment(ctx, id)
}

func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	query := fmt.Sprintf(`UPDATE %s SET
		name = $1, category_id = $2, serial_number = $3, technician_id = $4,
		employee_id = $5, team_id = $6, work_center_id = $7, description = $8,
		updated_at = NOW()
		WHERE id = $9`, equipmentTable)

	result, err := r.storage.Exec(ctx, query,
		payload.Name, payload.CategoryID, payload.SerialNumber.Ptr(),
		payload.TechnicianID, payload.EmployeeID, payload.TeamID,
		payload.WorkCenterID, payload.Description.Ptr(), id,
	)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.FindEquipment(ctx, id)
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipmentTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewInvalidInputError("equipment is referenced by maintenance requests")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// queryRefItems fetches id/name pairs for selection UIs; shared by the meta
// aggregator reads.
func queryRefItems(ctx context.Context, q Querier, table string) ([]dto.RefItemDTO, error) {
	rows, err := q.Query(ctx, fmt.Sprintf("SELECT id, name FROM %s ORDER BY name", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.RefItemDTO, 0)
	for rows.Next() {
		var item dto.RefItemDTO
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
