package repositories

import (
	"context"

	"github.com/google/uuid"

	"hub-service/internal/domain/entities"
)

type ProfileRepository interface {
	FindByUserId(ctx context.Context, userID uuid.UUID) (*entities.Profile, error)
	FindAll(ctx context.Context) ([]*entities.Profile, error)
	// Save inserts the profile or replaces the one owned by the same user.
	Save(ctx context.Context, profile *entities.Profile) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
