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

type dbUser struct {
	ID        uint64
	FullName  string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt sql.NullTime
}

func (db *dbUser) ToDTO() dto.UserDTO {
	return dto.UserDTO{
		ID:        db.ID,
		Name:      db.FullName,
		Email:     db.Email,
		Role:      db.Role,
		CreatedAt: utils.FormatTime(db.CreatedAt),
	}
}

const (
	userTable  = "users"
	userFields = "id, full_name, email, password, role, created_at, updated_at"
)

// UserRecord is the internal shape that still carries the password hash; it
// never leaves the service layer.
type UserRecord struct {
	ID       uint64
	FullName string
	Email    string
	Password string
	Role     string
}

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
	FindUserByID(ctx context.Context, id uint64) (*dto.UserDTO, error)
	FindUserByEmail(ctx context.Context, email string) (*UserRecord, error)
	CreateUser(ctx context.Context, fullName, email, passwordHash string) (uint64, error)
}

type userRepository struct{ storage *pgxpool.Pool }

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &userRepository{storage: storage}
}

func (r *userRepository) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", userFields, userTable)
	rows, err := r.storage.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]dto.UserDTO, 0)
	for rows.Next() {
		var dbRow dbUser
		if err := rows.Scan(&dbRow.ID, &dbRow.FullName, &dbRow.Email, &dbRow.Password, &dbRow.Role, &dbRow.CreatedAt, &dbRow.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, dbRow.ToDTO())
	}
	return users, rows.Err()
}

func (r *userRepository) FindUserByID(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", userFields, userTable)
	var dbRow dbUser
	err := r.storage.QueryRow(ctx, query, id).Scan(&dbRow.ID, &dbRow.FullName, &dbRow.Email, &dbRow.Password, &dbRow.Role, &dbRow.CreatedAt, &dbRow.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	userDTO := dbRow.ToDTO()
	return &userDTO, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*UserRecord, error) {
	query := fmt.Sprintf("SELECT id, full_name, email, password, role FROM %s WHERE email = $1", userTable)
	var rec UserRecord
	err := r.storage.QueryRow(ctx, query, email).Scan(&rec.ID, &rec.FullName, &rec.Email, &rec.Password, &rec.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *userRepository) CreateUser(ctx context.Context, fullName, email, passwordHash string) (uint64, error) {
	query := fmt.Sprintf("INSERT INTO %s (full_name, email, password) VALUES ($1, $2, $3) RETURNING id", userTable)
	var id uint64
	err := r.storage.QueryRow(ctx, query, fullName, email, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrConflict
		}
		return 0, err
	}
	return id, nil
}
