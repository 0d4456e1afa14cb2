package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/pkg/utils"
)

type ReportRepositoryInterface interface {
	GetRequestReport(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestReportItemDTO, error)
}

type reportRepository struct{ storage *pgxpool.Pool }

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &reportRepository{storage: storage}
}

// GetRequestReport returns the request listing joined with reference names,
// the shape exported to XLSX.
func (r *reportRepository) GetRequestReport(ctx context.Context, filter dto.RequestListFilter) ([]dto.RequestReportItemDTO, error) {
	builder := psql.
		Select(
			"r.id", "r.subject",
			"COALESCE(e.name, '')", "COALESCE(w.name, '')",
			"r.request_type", "r.priority", "r.status", "r.due_date",
			"COALESCE(t.name, '')", "COALESCE(tech.name, '')",
			"COALESCE(u.full_name, '')", "r.created_at",
		).
		From(requestTable + " r").
		LeftJoin("equipment e ON e.id = r.equipment_id").
		LeftJoin("work_centers w ON w.id = r.work_center_id").
		LeftJoin("teams t ON t.id = r.team_id").
		LeftJoin("technicians tech ON tech.id = r.technician_id").
		LeftJoin("users u ON u.id = r.requester_id").
		OrderBy("r.id")

	if filter.RequesterID != 0 {
		builder = builder.Where("r.requester_id = ?", filter.RequesterID)
	}
	if filter.EquipmentID != 0 {
		builder = builder.Where("r.equipment_id = ?", filter.EquipmentID)
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

	items := make([]dto.RequestReportItemDTO, 0)
	for rows.Next() {
		var item dto.RequestReportItemDTO
		var dueDate sql.NullTime
		var createdAt time.Time
		if err := rows.Scan(
			&item.ID, &item.Subject, &item.EquipmentName, &item.WorkCenterName,
			&item.RequestType, &item.Priority, &item.Status, &dueDate,
			&item.TeamName, &item.TechnicianName, &item.RequesterName, &createdAt,
		); err != nil {
			return nil, err
		}
		item.DueDate = utils.SafeDeref(utils.NullTimeToDatePtr(dueDate))
		item.CreatedAt = utils.FormatTime(createdAt)
		items = append(items, item)
	}
	return items, rows.Err()
}
