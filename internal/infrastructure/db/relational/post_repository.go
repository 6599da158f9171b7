package relational

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) repositories.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	postModel := toPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return nil, err
	}
	return r.FindById(ctx, postModel.Id)
}

func (r *PostRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Post, error) {
	var postModel PostModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return postModel.toEntity(), nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*entities.Post, error) {
	var postModels []PostModel
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&postModels).Error; err != nil {
		return nil, err
	}
	posts := make([]*entities.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, postModels[i].toEntity())
	}
	return posts, nil
}

// Update overwrites the whole row. Concurrent updates are last write wins,
// but a deleted post is never written back.
func (r *PostRepository) Update(ctx context.Context, post *entities.Post) error {
	result := r.db.WithContext(ctx).
		Model(&PostModel{}).
		Where("id = ?", post.Id).
		Select("*").
		Omit("id", "created_at").
		Updates(toPostModel(post))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entities.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&PostModel{}, "id = ?", id).Error
}

func (r *PostRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&PostModel{}, "user_id = ?", userID).Error
}
