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

type dbTeam struct {
	ID        uint64
	Name      string
	CompanyID sql.NullInt64
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbTeam) ToDTO() dto.TeamDTO {
	return dto.TeamDTO{
		ID:        db.ID,
		Name:      db.Name,
		CompanyID: utils.NullInt64ToPtr(db.CompanyID),
		Members:   make([]dto.RefItemDTO, 0),
		CreatedAt: utils.FormatTime(db.CreatedAt),
		UpdatedAt: utils.NullTimeToEmptyString(db.UpdatedAt),
	}
}

const (
	teamTable       = "teams"
	teamFields      = "id, name, company_id, created_at, updated_at"
	teamMemberTable = "team_members"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]dto.TeamDTO, error)
	GetTeamRefs(ctx context.Context) ([]dto.RefItemDTO, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeamInTx(ctx context.Context, tx pgx.Tx, payload dto.CreateTeamDTO) (uint64, error)
	UpdateTeamInTx(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateTeamDTO) error
	ReplaceMembersInTx(ctx context.Context, tx pgx.Tx, teamID uint64, members []uint64) error
	DeleteTeam(ctx context.Context, id uint64) error
}

type teamRepository struct{ storage *pgxpool.Pool }

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &teamRepository{storage: storage}
}

// GetTeams returns every team with its technician roster attached.
func (r *teamRepository) GetTeams(ctx context.Context) ([]dto.TeamDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", teamFields, teamTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]dto.TeamDTO, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var dbRow dbTeam
		if err := rows.Scan(&dbRow.ID, &dbRow.Name, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, err
		}
		index[dbRow.ID] = len(teams)
		teams = append(teams, dbRow.ToDTO())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberRows, err := r.storage.Query(ctx,
		`SELECT tm.team_id, t.id, t.name
		 FROM team_members tm
		 JOIN technicians t ON tm.technician_id = t.id
		 ORDER BY t.name`)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var teamID uint64
		var member dto.RefItemDTO
		if err := memberRows.Scan(&teamID, &member.ID, &member.Name); err != nil {
			return nil, err
		}
		if i, ok := index[teamID]; ok {
			teams[i].Members = append(teams[i].Members, member)
		}
	}
	return teams, memberRows.Err()
}

func (r *teamRepository) GetTeamRefs(ctx context.Context) ([]dto.RefItemDTO, error) {
	return queryRefItems(ctx, r.storage, teamTable)
}

func (r *teamRepository) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", teamFields, teamTable)
	var dbRow dbTeam
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.Name, &dbRow.CompanyID, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	teamDTO := dbRow.ToDTO()

	memberRows, err := r.storage.Query(ctx,
		`SELECT t.id, t.name
		 FROM team_members tm
		 JOIN technicians t ON tm.technician_id = t.id
		 WHERE tm.team_id = $1
		 ORDER BY t.name`, id)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var member dto.RefItemDTO
		if err := memberRows.Scan(&member.ID, &member.Name); err != nil {
			return nil, err
		}
		teamDTO.Members = append(teamDTO.Members, member)
	}
	if err := memberRows.Err(); err != nil {
		return nil, err
	}
	return &teamDTO, nil
}

func (r *teamRepository) CreateTeamInTx(ctx context.Context, tx pgx.Tx, payload dto.CreateTeamDTO) (uint64, error) {
	var id uint64
	query := fmt.Sprintf("INSERT INTO %s (name, company_id) VALUES ($1, $2) RETURNING id", teamTable)
	if err := tx.QueryRow(ctx, query, payload.Name, payload.CompanyID).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *teamRepository) UpdateTeamInTx(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateTeamDTO) error {
	query := fmt.Sprintf("UPDATE %s SET name = $1, company_id = $2, updated_at = NOW() WHERE id = $3", teamTable)
	result, err := tx.Exec(ctx, query, payload.Name, payload.CompanyID, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ReplaceMembersInTx rewrites the roster for a team. Runs inside the same
// transaction as the team write so a failure never leaves a half-written
// roster behind.
func (r *teamRepository) ReplaceMembersInTx(ctx context.Context, tx pgx.Tx, teamID uint64, members []uint64) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE team_id = $1", teamMemberTable), teamID); err != nil {
		return err
	}
	for _, technicianID := range members {
		_, err := tx.Exec(ctx,
			fmt.Sprintf("INSERT INTO %s (team_id, technician_id) VALUES ($1, $2)", teamMemberTable),
			teamID, technicianID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return apperrors.NewInvalidInputError("technician %d does not exist", technicianID)
			}
			return err
		}
	}
	return nil
}

func (r *teamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", teamTable)
	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewInvalidInputError("team is referenced by maintenance requests")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
