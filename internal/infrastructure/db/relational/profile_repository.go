package relational

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUserId(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	var profileModel ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profileModel.toEntity(), nil
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]*entities.Profile, error) {
	var profileModels []ProfileModel
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&profileModels).Error; err != nil {
		return nil, err
	}
	profiles := make([]*entities.Profile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, profileModels[i].toEntity())
	}
	return profiles, nil
}

// Save upserts on user_id so a user never ends up with two profiles.
func (r *ProfileRepository) Save(ctx context.Context, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company", "website", "location", "status", "skills", "bio",
			"github_username", "social", "experience", "education", "updated_at",
		}),
	}).Create(toProfileModel(profile)).Error
}

func (r *ProfileRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ProfileModel{}, "user_id = ?", userID).Error
}
