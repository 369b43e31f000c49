package services

import (
	"context"
	"errors"

	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/models/dto"
	"github.com/Visall666/school-api/internal/app/repositories"
	"github.com/Visall666/school-api/internal/pkg/apperrors"
	"github.com/Visall666/school-api/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type authService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register hashes the password and persists a new user. A duplicate email
// surfaces as apperrors.ErrEmailAlreadyExists.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		}
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User registered")
	return user, nil
}

// Login verifies the credentials and issues a fresh access token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", err
	}

	return token, nil
}
