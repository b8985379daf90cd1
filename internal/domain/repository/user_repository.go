package repository

import (
	"context"
	"errors"

	"github.com/formgate/formgate/internal/domain/entity"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines user-related database operations. The compound
// create methods persist the user and its credential atomically.
type UserRepository interface {
	CreateWithPassword(ctx context.Context, u *entity.User, passwordHash string) error
	CreateWithExternal(ctx context.Context, u *entity.User, googleID string) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetPasswordCredential(ctx context.Context, userID string) (*entity.PasswordCredential, error)
	GetExternalCredential(ctx context.Context, userID string) (*entity.ExternalCredential, error)
}
