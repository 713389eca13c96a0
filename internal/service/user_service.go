package service

import (
	"context"
	"errors"

	"myfitness/server/internal/domain"
	"myfitness/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidProfile    = errors.New("profile validation failed")
	ErrProfileIncomplete = errors.New("profile is incomplete")
)

// --- Service Interface ---
type UserService interface {
	GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile domain.Profile) (*domain.User, error)
}

// --- Service Implementation ---

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetUser fetches a user with the password hash cleared.
func (s *userService) GetUser(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile validates and stores the user's fitness profile.
func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, profile domain.Profile) (*domain.User, error) {
	if profile.Age <= 0 || profile.Age > 120 {
		return nil, ErrInvalidProfile
	}
	if profile.HeightCm <= 0 || profile.WeightKg <= 0 {
		return nil, ErrInvalidProfile
	}
	if profile.Goal == "" {
		return nil, ErrInvalidProfile
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, userID)
}
