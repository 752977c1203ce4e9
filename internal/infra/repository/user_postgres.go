package repository

import (
	"context"
	"log/slog"
	"time"

	"storefront-cart/internal/domain/user"
	"storefront-cart/internal/infra"
	"storefront-cart/internal/infra/db"
	"storefront-cart/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	userColumns     = `id, email, first_name, last_name, password_hash, created_at`
	insertUserSQL   = `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	findUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	findUserByID    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
)

// PostgresUserRepository stores accounts in the users table.
type PostgresUserRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPostgresUserRepository(conn db.DBTX, logger *slog.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{db: conn, logger: logger}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.FirstName(), u.LastName(), u.PasswordHash(),
		pgconv.TimeToPgtype(u.CreatedAt()),
	)
	if err != nil {
		return infra.WrapDBErr(r.logger, "failed to create user", err)
	}
	return nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	return r.findOne(ctx, findUserByEmail, email.Value())
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

type userRow struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

func (r *PostgresUserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	var row userRow
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&row.ID, &row.Email, &row.FirstName, &row.LastName, &row.PasswordHash, &row.CreatedAt)
	if err != nil {
		return nil, infra.WrapDBErr(r.logger, "failed to find user", err)
	}

	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptData, "stored user has an invalid email", err)
	}
	return user.Reconstruct(row.ID, email, row.FirstName, row.LastName, row.PasswordHash, row.CreatedAt), nil
}
