package mapper

import (
	"hub-service/internal/application/common"
	"hub-service/internal/domain/entities"
)

// NewProfileResultFromEntity maps a profile. owner may be nil when the
// account is gone; the reference then only carries the id.
func NewProfileResultFromEntity(profile *entities.Profile, owner *entities.User) *common.ProfileResult {
	result := &common.ProfileResult{
		Id:             profile.Id,
		User:           common.ProfileOwnerResult{Id: profile.UserId},
		Company:        profile.Company,
		Website:        profile.Website,
		Location:       profile.Location,
		Status:         profile.Status,
		Skills:         profile.Skills,
		Bio:            profile.Bio,
		GithubUsername: profile.GithubUsername,
		Social:         profile.Social,
		Experience:     profile.Experience,
		Education:      profile.Education,
		CreatedAt:      profile.CreatedAt,
	}
	if owner != nil {
		result.User.Name = owner.Name
		result.User.Avatar = owner.Avatar
	}
	if result.Skills == nil {
		result.Skills = []string{}
	}
	if result.Experience == nil {
		result.Experience = []entities.Experience{}
	}
	if result.Education == nil {
		result.Education = []entities.Education{}
	}
	return result
}
