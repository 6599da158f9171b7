package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hub-service/internal/domain/entities"
)

// ErrDuplicateEmail is returned by Create when the email is already
// registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
