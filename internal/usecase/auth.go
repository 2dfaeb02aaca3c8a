package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/waritphon/devconnect-api/internal/auth"
	"github.com/waritphon/devconnect-api/internal/gravatar"
	"github.com/waritphon/devconnect-api/internal/model"
	"github.com/waritphon/devconnect-api/internal/repository"
	"github.com/waritphon/devconnect-api/internal/security"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const avatarSize = 200

// WelcomeMailer sends a greeting to newly registered users. Implementations
// must tolerate being called concurrently.
type WelcomeMailer interface {
	SendWelcome(name, email string) error
}

// AuthUsecase defines the interface for registration, login and account
// lookup.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (string, error)
	Login(ctx context.Context, params LoginParams) (string, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	mailer   WelcomeMailer
	logger   *zerolog.Logger
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	tokens *auth.TokenService,
	mailer WelcomeMailer,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (string, error) {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return "", err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Avatar:       gravatar.URL(params.Email, avatarSize),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrUserAlreadyExists
		}

		return "", err
	}

	if u.mailer != nil {
		// Best effort; registration does not fail on mail errors.
		go func(name, email string) {
			if err := u.mailer.SendWelcome(name, email); err != nil {
				u.logger.Warn().Err(err).Msg("failed to send welcome email")
			}
		}(user.Name, user.Email)
	}

	return u.tokens.Issue(user.ID.Hex())
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}

		return "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return "", err
	} else if !ok {
		return "", ErrInvalidCredentials
	}

	return u.tokens.Issue(user.ID.Hex())
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}
