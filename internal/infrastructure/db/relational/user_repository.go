package relational

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := toUserModel(user.GetUser())
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicateEmail
		}
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", entities.NormalizeEmail(email))
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id).Error
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return userModel.toEntity(), nil
}
