package repositories

import (
	"context"

	"github.com/google/uuid"

	"hub-service/internal/domain/entities"
)

type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.Post, error)
	// FindAll returns every post, most recent first.
	FindAll(ctx context.Context) ([]*entities.Post, error)
	// Update replaces the stored post, likes and comments included. It
	// returns entities.ErrPostNotFound when the post no longer exists.
	Update(ctx context.Context, post *entities.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
