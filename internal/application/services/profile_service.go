package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hub-service/internal/application/command"
	"hub-service/internal/application/common"
	"hub-service/internal/application/interfaces"
	"hub-service/internal/application/mapper"
	"hub-service/internal/application/query"
	"hub-service/internal/apperrors"
	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
	"hub-service/internal/messaging"
)

var (
	ErrSkillsRequired = apperrors.New(apperrors.KindValidation, "Skills is required")
	ErrInvalidDate    = apperrors.New(apperrors.KindValidation, "Please include a valid date")
)

var dateLayouts = []string{"2006-01-02", time.RFC3339}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	postRepo    repositories.PostRepository
	publisher   messaging.Publisher
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	publisher messaging.Publisher,
) interfaces.ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		postRepo:    postRepo,
		publisher:   publisher,
	}
}

func (s *ProfileService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*query.ProfileQueryResult, error) {
	profile, err := s.findOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	result, err := s.toResult(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &query.ProfileQueryResult{Result: result}, nil
}

func (s *ProfileService) UpsertProfile(ctx context.Context, userID uuid.UUID, upsertCommand *command.UpsertProfileCommand) (*command.ProfileCommandResult, error) {
	if len(entities.SplitSkills(upsertCommand.Skills)) == 0 {
		return nil, ErrSkillsRequired
	}

	profile, err := s.profileRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = entities.NewProfile(userID)
	}

	profile.Apply(entities.ProfileFields{
		Company:        upsertCommand.Company,
		Website:        upsertCommand.Website,
		Location:       upsertCommand.Location,
		Status:         upsertCommand.Status,
		Skills:         upsertCommand.Skills,
		Bio:            upsertCommand.Bio,
		GithubUsername: upsertCommand.GithubUsername,
		Social: entities.Social{
			Youtube:   strings.TrimSpace(upsertCommand.Youtube),
			Twitter:   strings.TrimSpace(upsertCommand.Twitter),
			Facebook:  strings.TrimSpace(upsertCommand.Facebook),
			Linkedin:  strings.TrimSpace(upsertCommand.Linkedin),
			Instagram: strings.TrimSpace(upsertCommand.Instagram),
		},
	})

	return s.save(ctx, profile)
}

func (s *ProfileService) ListProfiles(ctx context.Context) (*query.ProfileQueryListResult, error) {
	profiles, err := s.profileRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*common.ProfileResult, 0, len(profiles))
	for _, profile := range profiles {
		result, err := s.toResult(ctx, profile)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return &query.ProfileQueryListResult{Result: results}, nil
}

func (s *ProfileService) FindProfileByUser(ctx context.Context, userID uuid.UUID) (*query.ProfileQueryResult, error) {
	profile, err := s.profileRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, entities.ErrProfileNotFound
	}
	result, err := s.toResult(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &query.ProfileQueryResult{Result: result}, nil
}

// DeleteAccount removes the user's posts, then the profile, then the
// account itself.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.postRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.profileRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	publish(s.publisher, messaging.ProfileDeleted, messaging.UserEvent{
		UserID:    userID.String(),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (s *ProfileService) AddExperience(ctx context.Context, userID uuid.UUID, experienceCommand *command.AddExperienceCommand) (*command.ProfileCommandResult, error) {
	from, to, err := parseRange(experienceCommand.From, experienceCommand.To)
	if err != nil {
		return nil, err
	}
	profile, err := s.findOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.AddExperience(entities.Experience{
		Title:       strings.TrimSpace(experienceCommand.Title),
		Company:     strings.TrimSpace(experienceCommand.Company),
		Location:    strings.TrimSpace(experienceCommand.Location),
		From:        from,
		To:          to,
		Current:     experienceCommand.Current,
		Description: experienceCommand.Description,
	})
	return s.save(ctx, profile)
}

func (s *ProfileService) DeleteExperience(ctx context.Context, userID, experienceID uuid.UUID) (*command.ProfileCommandResult, error) {
	profile, err := s.findOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.RemoveExperience(experienceID) {
		return s.result(ctx, profile)
	}
	return s.save(ctx, profile)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID uuid.UUID, educationCommand *command.AddEducationCommand) (*command.ProfileCommandResult, error) {
	from, to, err := parseRange(educationCommand.From, educationCommand.To)
	if err != nil {
		return nil, err
	}
	profile, err := s.findOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.AddEducation(entities.Education{
		School:       strings.TrimSpace(educationCommand.School),
		Degree:       strings.TrimSpace(educationCommand.Degree),
		FieldOfStudy: strings.TrimSpace(educationCommand.FieldOfStudy),
		From:         from,
		To:           to,
		Current:      educationCommand.Current,
		Description:  educationCommand.Description,
	})
	return s.save(ctx, profile)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, educationID uuid.UUID) (*command.ProfileCommandResult, error) {
	profile, err := s.findOwnProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !profile.RemoveEducation(educationID) {
		return s.result(ctx, profile)
	}
	return s.save(ctx, profile)
}

func (s *ProfileService) findOwnProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	profile, err := s.profileRepo.FindByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, entities.ErrNoProfile
	}
	return profile, nil
}

func (s *ProfileService) save(ctx context.Context, profile *entities.Profile) (*command.ProfileCommandResult, error) {
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return s.result(ctx, profile)
}

func (s *ProfileService) result(ctx context.Context, profile *entities.Profile) (*command.ProfileCommandResult, error) {
	result, err := s.toResult(ctx, profile)
	if err != nil {
		return nil, err
	}
	return &command.ProfileCommandResult{Result: result}, nil
}

// toResult populates the owner's name and avatar.
func (s *ProfileService) toResult(ctx context.Context, profile *entities.Profile) (*common.ProfileResult, error) {
	owner, err := s.userRepo.FindById(ctx, profile.UserId)
	if err != nil {
		return nil, err
	}
	return mapper.NewProfileResultFromEntity(profile, owner), nil
}

func parseRange(from, to string) (time.Time, *time.Time, error) {
	start, err := parseDate(from)
	if err != nil {
		return time.Time{}, nil, err
	}
	if strings.TrimSpace(to) == "" {
		return start, nil, nil
	}
	end, err := parseDate(to)
	if err != nil {
		return time.Time{}, nil, err
	}
	return start, &end, nil
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
