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

type dbCategory struct {
	ID          uint64
	Name        string
	Responsible sql.NullString
	CompanyID   sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   sql.NullTime
}

func (db *dbCategory) ToDTO() dto.CategoryDTO {
	return dto.CategoryDTO{
		ID:          db.ID,
		Name:        db.Name,
		Responsible: utils.NullStringToPtr(db.Responsible),
		CompanyID:   utils.NullInt64ToPtr(db.CompanyID),
		CreatedAt:   utils.FormatTime(db.CreatedAt),
		UpdatedAt:   utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

const (
	categoryTable  = "equipment_categories"
	categoryFields = "id, name, responsible, company_id, created_at, updated_at"
)

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	GetCategoryRefs(ctx context.Context) ([]dto.RefItemDTO, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryRepository struct{ storage *pgxpool.Pool }

func NewCategoryRepository(storage *pgxpool.Pool) CategoryRepositoryInterface {
	return &categoryRepository{storage: storage}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", categoryFields, categoryTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]dto.CategoryDTO, 0)
	for rows.Next() {
		var dbRow dbCategory
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.Responsible, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, dbRow.ToDTO())
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetCategoryRefs(ctx context.Context) ([]dto.RefItemDTO, error) {
	return queryRefItems(ctx, r.storage, categoryTable)
}

func (r *categoryRepository) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*dto.CategoryDTO, error) {
	query := fmt.Sprintf("INSERT INTO %s (name, responsible, company_id) VALUES ($1, $2, $3) RETURNING %s", categoryTable, categoryFields)
	var dbRow dbCategory
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.Responsible, payload.CompanyID).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Responsible, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		return nil, err
	}
	categoryDTO := dbRow.ToDTO()
	return &categoryDTO, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id uint64, payload dto.UpdateCategoryDTO) (*dto.CategoryDTO, error) {
	query := fmt.Sprintf("UPDATE %s SET name = $1, responsible = $2, company_id = $3, updated_at = NOW() WHERE id = $4 RETURNING %s", categoryTable, categoryFields)
	var dbRow dbCategory
	err := r.storage.QueryRow(ctx, query, payload.Name, payload.Responsible, payload.CompanyID, id).
		Scan(&dbRow.ID, &dbRow.Name, &dbRow.Responsible, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	categoryDTO := dbRow.ToDTO()
	return &categoryDTO, nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", categoryTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewInvalidInputError("category is still assigned to equipment")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
