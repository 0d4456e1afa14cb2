package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

type dbRequest struct {
	ID            uint64
	Subject       string
	EquipmentID   sql.NullInt64
	WorkCenterID  sql.NullInt64
	RequestType   string
	Priority      string
	Status        string
	DueDate       sql.NullTime
	ScheduledDate sql.NullTime
	TeamID        sql.NullInt64
	TechnicianID  sql.NullInt64
	RequesterID   sql.NullInt64
	Notes         sql.NullString
	CreatedAt     time.Time
	UpdatedAt     sql.NullTime
}

func (db *dbRequest) scan(row pgx.Row) error {
	return row.Scan(
		&db.ID, &db.Subject, &db.EquipmentID, &db.WorkCenterID, &db.RequestType,
		&db.Priority, &db.Status, &db.DueDate, &db.ScheduledDate, &db.TeamID,
		&db.TechnicianID, &db.RequesterID, &db.Notes, &db.CreatedAt, &db.UpdatedAt,
	)
}

func (db *dbRequest) ToDTO() dto.RequestDTO {
	return dto.RequestDTO{
		ID:            db.ID,
		Subject:       db.Subject,
		EquipmentID:   utils.NullInt64ToPtr(db.EquipmentID),
		WorkCenterID:  utils.NullInt64ToPtr(db.WorkCenterID),
		RequestType:   db.RequestType,
		Priority:      db.Priority,
		Status:        db.Status,
		DueDate:       utils.NullTimeToDatePtr(db.DueDate),
		ScheduledDate: utils.NullTimeToDatePtr(db.ScheduledDate),
		TeamID:        utils.NullInt64ToPtr(db.TeamID),
		TechnicianID:  utils.NullInt64ToPtr(db.TechnicianID),
		RequesterID:   utils.NullInt64ToPtr(db.RequesterID),
		Notes:         utils.NullStringToPtr(db.Notes),
		CreatedAt:     utils.FormatTime(db.CreatedAt),
		UpdatedAt:     utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

const (
	requestTable  = "maintenance_requests"
	requestFields = "id, subject, equipment_id, work_center_id, request_type, priority, status, due_date, scheduled_date, team_id, technician_id, requester_id, notes, created_at, updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, requesterID uint64, payload dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequestStatus(ctx context.Context, id uint64, status string) (*dto.RequestDTO, error)
}

type requestRepository struct{ storage *pgxpool.Pool }

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &requestRepository{storage: storage}
}

func (r *requestRepository) GetRequests(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestDTO, error) {
	builder := psql.Select(requestFields).From(requestTable).OrderBy("id DESC")
	if filter.RequesterID != 0 {
		builder = builder.Where(sq.Eq{"requester_id": filter.RequesterID})
	}
	if filter.EquipmentID != 0 {
		builder = builder.Where(sq.Eq{"equipment_id": filter.EquipmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]dto.RequestDTO, 0)
	for rows.Next() {
		var dbRow dbRequest
		if err := dbRow.scan(rows); err != nil {
			return nil, err
		}
		requests = append(requests, dbRow.ToDTO())
	}
	return requests, rows.Err()
}

func (r *requestRepository) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", requestFields, requestTable)
	var dbRow dbRequest
	if err := dbRow.scan(r.storage.QueryRow(ctx, query, id)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	requestDTO := dbRow.ToDTO()
	return &requestDTO, nil
}

func (r *requestRepository) CreateRequest(ctx context.Context, requesterID uint64, payload dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	// status is not part of the insert: a new request always starts in NEW,
	// which is the column default.
	query := fmt.Sprintf(`INSERT INTO %s
		(subject, equipment_id, work_center_id, request_type, priority, due_date, scheduled_date, team_id, technician_id, requester_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s`, requestTable, requestFields)

	var dbRow dbRequest
	err := dbRow.scan(r.storage.QueryRow(ctx, query,
		payload.Subject, payload.EquipmentID, payload.WorkCenterID,
		payload.RequestType, payload.Priority, payload.DueDate,
		payload.ScheduledDate.Ptr(), payload.TeamID, payload.TechnicianID,
		requesterID, payload.Notes.Ptr(),
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.NewInvalidInputError("referenced record does not exist")
		}
		return nil, err
	}
	requestDTO := dbRow.ToDTO()
	return &requestDTO, nil
}

func (r *requestRepository) UpdateRequest(ctx context.Context, id uint64, payload dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	query := fmt.Sprintf(`UPDATE %s SET
		subject = $1, equipment_id = $2, work_center_id = $3, request_type = $4,
		priority = $5, status = $6, due_date = $7, scheduled_date = $8,
		team_id = $9, technician_id = $10, notes = $11, updated_at = NOW()
		WHERE id = $12 RETURNING %s`, requestTable, requestFields)

	var dbRow dbRequest
	err := dbRow.scan(r.storage.QueryRow(ctx, query,
		payload.Subject, payload.EquipmentID, payload.WorkCenterID,
		payload.RequestType, payload.Priority, payload.Status, payload.DueDate,
		payload.ScheduledDate.Ptr(), payload.TeamID, payload.TechnicianID,
		payload.Notes.Ptr(), id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	requestDTO := dbRow.ToDTO()
	return &requestDTO, nil
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id uint64, status string) (*dto.RequestDTO, error) {
	query := fmt.Sprintf("UPDATE %s SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING %s", requestTable, requestFields)
	var dbRow dbRequest
	if err := dbRow.scan(r.storage.QueryRow(ctx, query, status, id)); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	requestDTO := dbRow.ToDTO()
	return &requestDTO, nil
}
