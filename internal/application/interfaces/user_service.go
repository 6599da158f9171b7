package interfaces

import (
	"context"

	"github.com/google/uuid"

	"hub-service/internal/application/command"
	"hub-service/internal/application/query"
)

type UserService interface {
	RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	GetAuthenticatedUser(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error)
}
