package interfaces

import (
	"context"

	"github.com/google/uuid"

	"hub-service/internal/application/command"
	"hub-service/internal/application/query"
)

type ProfileService interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*query.ProfileQueryResult, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, upsertCommand *command.UpsertProfileCommand) (*command.ProfileCommandResult, error)
	ListProfiles(ctx context.Context) (*query.ProfileQueryListResult, error)
	FindProfileByUser(ctx context.Context, userID uuid.UUID) (*query.ProfileQueryResult, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	AddExperience(ctx context.Context, userID uuid.UUID, experienceCommand *command.AddExperienceCommand) (*command.ProfileCommandResult, error)
	DeleteExperience(ctx context.Context, userID, experienceID uuid.UUID) (*command.ProfileCommandResult, error)
	AddEducation(ctx context.Context, userID uuid.UUID, educationCommand *command.AddEducationCommand) (*command.ProfileCommandResult, error)
	DeleteEducation(ctx context.Context, userID, educationID uuid.UUID) (*command.ProfileCommandResult, error)
}
