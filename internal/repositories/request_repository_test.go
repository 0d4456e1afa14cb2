package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/dto"
	"gearguard/pkg/database/postgresql"
	apperrors "gearguard/pkg/errors"
)

// testPool connects to the database named by TEST_DATABASE_URL and applies
// the migrations. Tests using it are skipped when the variable is unset so
// the suite stays runnable without infrastructure.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration test")
	}

	require.NoError(t, postgresql.Migrate(dsn))

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(),
		`TRUNCATE TABLE maintenance_requests, team_members, equipment, work_centers, teams, technicians, employees, equipment_categories, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return pool
}

func seedRequestFixtures(t *testing.T, pool *pgxpool.Pool) (requesterID, teamID, equipmentID uint64) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO users (full_name, email, password) VALUES ('Test Requester', 'requester@example.com', 'x') RETURNING id`).
		Scan(&requesterID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO teams (name) VALUES ('Mechanics') RETURNING id`).
		Scan(&teamID))
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO equipment (name) VALUES ('Grinder') RETURNING id`).
		Scan(&equipmentID))
	return
}

func TestRequestRepositoryLifecycle(t *testing.T) {
	pool := testPool(t)
	requesterID, teamID, equipmentID := seedRequestFixtures(t, pool)

	repo := NewRequestRepository(pool)
	ctx := context.Background()

	created, err := repo.CreateRequest(ctx, requesterID, dto.CreateRequestDTO{
		Subject:     "Grinder overheating",
		EquipmentID: &equipmentID,
		RequestType: "CORRECTIVE",
		Priority:    "MEDIUM",
		DueDate:     "2026-09-15",
		TeamID:      teamID,
	})
	require.NoError(t, err)
	assert.Equal(t, "NEW", created.Status, "storage default must apply")
	require.NotNil(t, created.RequesterID)
	assert.Equal(t, requesterID, *created.RequesterID)

	found, err := repo.FindRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grinder overheating", found.Subject)

	updated, err := repo.UpdateRequestStatus(ctx, created.ID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", updated.Status)

	list, err := repo.GetRequests(ctx, dto.RequestListFilter{RequesterID: requesterID})
	require.NoError(t, err)
	require.Len(t, list, 1)

	empty, err := repo.GetRequests(ctx, dto.RequestListFilter{EquipmentID: equipmentID + 1000})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRequestRepositoryNotFound(t *testing.T) {
	pool := testPool(t)

	repo := NewRequestRepository(pool)
	ctx := context.Background()

	_, err := repo.FindRequest(ctx, 999999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.UpdateRequestStatus(ctx, 999999, "SCRAP")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRequestRepositoryRejectsMissingForeignKeys(t *testing.T) {
	pool := testPool(t)
	requesterID, _, _ := seedRequestFixtures(t, pool)

	repo := NewRequestRepository(pool)

	badTeam := uint64(424242)
	_, err := repo.CreateRequest(context.Background(), requesterID, dto.CreateRequestDTO{
		Subject:     "Orphan request",
		RequestType: "CORRECTIVE",
		Priority:    "MEDIUM",
		DueDate:     "2026-09-15",
		TeamID:      badTeam,
	})
	require.Error(t, err)
	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}
