package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
)

// TechnicianRepositoryInterface covers the read-only roster tables feeding
// the meta endpoints.
type TechnicianRepositoryInterface interface {
	GetTechnicianRefs(ctx context.Context) ([]dto.RefItemDTO, error)
	GetEmployeeRefs(ctx context.Context) ([]dto.RefItemDTO, error)
}

type technicianRepository struct{ storage *pgxpool.Pool }

func NewTechnicianRepository(storage *pgxpool.Pool) TechnicianRepositoryInterface {
	return &technicianRepository{storage: storage}
}

func (r *technicianRepository) GetTechnicianRefs(ctx context.Context) ([]dto.RefItemDTO, error) {
	return queryRefItems(ctx, r.storage, "technicians")
}

func (r *technicianRepository) GetEmployeeRefs(ctx context.Context) ([]dto.RefItemDTO, error) {
	return queryRefItems(ctx, r.storage, "employees")
}
