package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslex/campuslex/internal/shared"
)

// Repository defines principal lookups for the auth module. The two stores
// are queried independently; usernames are unique per kind only.
type Repository interface {
	FindStudent(ctx context.Context, username string) (*Account, error)
	FindAdmin(ctx context.Context, username string) (*Account, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindStudent fetches a student account by username.
func (r *PGRepository) FindStudent(ctx context.Context, username string) (*Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, hashed_password, is_active FROM students WHERE username = $1`, username)
	var acct Account
	if err := row.Scan(&acct.Principal.ID, &acct.Principal.Username, &acct.PasswordHash, &acct.Principal.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	acct.Principal.Kind = shared.KindStudent
	return &acct, nil
}

// FindAdmin fetches an admin account by username.
func (r *PGRepository) FindAdmin(ctx context.Context, username string) (*Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, username, hashed_password FROM admins WHERE username = $1`, username)
	var acct Account
	if err := row.Scan(&acct.Principal.ID, &acct.Principal.Username, &acct.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	acct.Principal.Kind = shared.KindAdmin
	acct.Principal.IsActive = true
	return &acct, nil
}

var _ Repository = (*PGRepository)(nil)
