package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/formgate/formgate/internal/domain/entity"
	"github.com/formgate/formgate/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateWithPassword inserts the user and its password credential in one
// transaction so a failure leaves no partial account behind.
func (r *UserRepository) CreateWithPassword(ctx context.Context, u *entity.User, passwordHash string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO users (email, username)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`, u.Email, u.Username)
		if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO password_credentials (user_id, password_hash)
			VALUES ($1, $2)
		`, u.ID, passwordHash)
		return err
	})
}

// CreateWithExternal inserts the user and its external credential in one
// transaction.
func (r *UserRepository) CreateWithExternal(ctx context.Context, u *entity.User, googleID string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO users (email, username)
			VALUES ($1, $2)
			RETURNING id, created_at, updated_at
		`, u.Email, u.Username)
		if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO external_credentials (user_id, google_id)
			VALUES ($1, $2)
		`, u.ID, googleID)
		return err
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, username, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetPasswordCredential(ctx context.Context, userID string) (*entity.PasswordCredential, error) {
	c := &entity.PasswordCredential{}

	row := r.pool.QueryRow(ctx, `
		SELECT user_id, password_hash
		FROM password_credentials
		WHERE user_id = $1
	`, userID)

	if err := row.Scan(&c.UserID, &c.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (r *UserRepository) GetExternalCredential(ctx context.Context, userID string) (*entity.ExternalCredential, error) {
	c := &entity.ExternalCredential{}

	row := r.pool.QueryRow(ctx, `
		SELECT user_id, google_id
		FROM external_credentials
		WHERE user_id = $1
	`, userID)

	if err := row.Scan(&c.UserID, &c.GoogleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
