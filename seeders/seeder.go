// Package seeders fills an empty database with demo reference data: the
// dictionaries the creation forms need plus one demo account. Every seed is
// idempotent, keyed by name or email, so the runner can be re-executed.
package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/pkg/utils"
)

const (
	demoUserEmail    = "demo@gearguard.local"
	demoUserPassword = "demo1234"
)

func Seed(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	steps := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool) error
	}{
		{"categories", seedCategories},
		{"technicians", seedTechnicians},
		{"employees", seedEmployees},
		{"teams", seedTeams},
		{"work centers", seedWorkCenters},
		{"equipment", seedEquipment},
		{"demo user", seedDemoUser},
	}

	for _, step := range steps {
		if err := step.fn(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		logger.Info("seeded", zap.String("step", step.name))
	}
	return nil
}

// idByName returns the row id for a name in the given table, or 0 when the
// row does not exist.
func idByName(ctx context.Context, db *pgxpool.Pool, table, name string) (uint64, error) {
	var id uint64
	err := db.QueryRow(ctx, fmt.Sprintf("SELECT id FROM %s WHERE name = $1", table), name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return id, err
}

func seedCategories(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range categoryData {
		id, err := idByName(ctx, db, "equipment_categories", name)
		if err != nil {
			return err
		}
		if id != 0 {
			continue
		}
		if _, err := db.Exec(ctx, "INSERT INTO equipment_categories (name) VALUES ($1)", name); err != nil {
			return err
		}
	}
	return nil
}

func seedTechnicians(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range technicianData {
		id, err := idByName(ctx, db, "technicians", name)
		if err != nil {
			return err
		}
		if id != 0 {
			continue
		}
		if _, err := db.Exec(ctx, "INSERT INTO technicians (name) VALUES ($1)", name); err != nil {
			return err
		}
	}
	return nil
}

func seedEmployees(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range employeeData {
		id, err := idByName(ctx, db, "employees", name)
		if err != nil {
			return err
		}
		if id != 0 {
			continue
		}
		if _, err := db.Exec(ctx, "INSERT INTO employees (name) VALUES ($1)", name); err != nil {
			return err
		}
	}
	return nil
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	for _, team := range teamData {
		teamID, err := idByName(ctx, db, "teams", team.Name)
		if err != nil {
			return err
		}
		if teamID == 0 {
			if err := db.QueryRow(ctx, "INSERT INTO teams (name) VALUES ($1) RETURNING id", team.Name).Scan(&teamID); err != nil {
				return err
			}
		}
		for _, techName := range team.Technicians {
			techID, err := idByName(ctx, db, "technicians", techName)
			if err != nil {
				return err
			}
			if techID == 0 {
				return fmt.Errorf("technician %q not seeded", techName)
			}
			_, err = db.Exec(ctx,
				"INSERT INTO team_members (team_id, technician_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				teamID, techID)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedWorkCenters(ctx context.Context, db *pgxpool.Pool) error {
	for _, wc := range workCenterData {
		id, err := idByName(ctx, db, "work_centers", wc.Name)
		if err != nil {
			return err
		}
		if id != 0 {
			continue
		}
		_, err = db.Exec(ctx,
			"INSERT INTO work_centers (name, department, cost_per_hour) VALUES ($1, $2, $3)",
			wc.Name, wc.Department, wc.CostPerHour)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	for _, eq := range equipmentData {
		id, err := idByName(ctx, db, "equipment", eq.Name)
		if err != nil {
			return err
		}
		if id != 0 {
			continue
		}

		categoryID, err := idByName(ctx, db, "equipment_categories", eq.Category)
		if err != nil {
			return err
		}
		teamID, err := idByName(ctx, db, "teams", eq.Team)
		if err != nil {
			return err
		}
		workCenterID, err := idByName(ctx, db, "work_centers", eq.WorkCenter)
		if err != nil {
			return err
		}

		_, err = db.Exec(ctx,
			"INSERT INTO equipment (name, category_id, team_id, work_center_id) VALUES ($1, $2, $3, $4)",
			eq.Name, categoryID, teamID, workCenterID)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDemoUser(ctx context.Context, db *pgxpool.Pool) error {
	var id uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", demoUserEmail).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := utils.HashPassword(demoUserPassword)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx,
		"INSERT INTO users (full_name, email, password, role) VALUES ($1, $2, $3, $4)",
		"Demo User", demoUserEmail, hash, "manager")
	return err
}
