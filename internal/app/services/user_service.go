package services

import (
	"context"

	"github.com/Visall666/school-api/internal/app/models"
	"github.com/Visall666/school-api/internal/app/repositories"
)

// UserService exposes read access to user accounts.
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
}

type userService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetAllUsers returns every user account. The password hash never leaves the
// server; the model excludes it from JSON.
func (s *userService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}
