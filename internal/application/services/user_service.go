package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"hub-service/internal/application/command"
	"hub-service/internal/application/interfaces"
	"hub-service/internal/application/mapper"
	"hub-service/internal/application/query"
	"hub-service/internal/apperrors"
	"hub-service/internal/domain/entities"
	"hub-service/internal/domain/repositories"
	"hub-service/internal/infrastructure"
	"hub-service/internal/messaging"
)

const welcomeMailTimeout = 10 * time.Second

var (
	ErrUserExists         = apperrors.New(apperrors.KindConflict, "User already exists")
	ErrInvalidCredentials = apperrors.New(apperrors.KindConflict, "Invalid Credentials")
	ErrUserNotFound       = apperrors.New(apperrors.KindNotFound, "User not found")
	ErrTooManyLogins      = apperrors.New(apperrors.KindTooManyRequests, "Too many login attempts, please try again later")
)

type UserService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	loginLimiter infrastructure.AttemptLimiter
	mailer       infrastructure.Mailer
	publisher    messaging.Publisher
}

func NewUserService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	loginLimiter infrastructure.AttemptLimiter,
	mailer infrastructure.Mailer,
	publisher messaging.Publisher,
) interfaces.UserService {
	return &UserService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		loginLimiter: loginLimiter,
		mailer:       mailer,
		publisher:    publisher,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, ErrUserExists
	}

	avatar := infrastructure.GravatarURL(registerCommand.Email)
	newUser := entities.NewUser(registerCommand.Name, registerCommand.Email, avatar, registerCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "Name is required", err)
	}
	if err := validatedUser.HashPassword(); err != nil {
		return nil, err
	}

	// A concurrent registration can win between the lookup above and here
	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if errors.Is(err, repositories.ErrDuplicateEmail) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}

	publish(s.publisher, messaging.UserRegistered, messaging.UserEvent{
		UserID:    createdUser.Id.String(),
		Name:      createdUser.Name,
		Email:     createdUser.Email,
		Timestamp: time.Now().UTC(),
	})

	// Send the welcome mail without holding up the response
	go func(name, email string) {
		mailCtx, cancel := context.WithTimeout(context.Background(), welcomeMailTimeout)
		defer cancel()
		if err := s.mailer.SendWelcome(mailCtx, name, email); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(createdUser.Name, createdUser.Email)

	token, err := s.jwtService.GenerateToken(createdUser.Id)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{Token: token}, nil
}

func (s *UserService) LoginUser(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	email := entities.NormalizeEmail(loginCommand.Email)

	allowed, err := s.loginLimiter.Allow(ctx, email)
	if err != nil {
		// Throttle store unavailable, let the attempt through
		log.Printf("Login limiter error: %v", err)
		allowed = true
	}
	if !allowed {
		return nil, ErrTooManyLogins
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Check password
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Id)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{Token: token}, nil
}

func (s *UserService) GetAuthenticatedUser(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
