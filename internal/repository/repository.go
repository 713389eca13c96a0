package repository

import (
	"context"

	"myfitness/server/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDuplicate    = RepositoryError("duplicate record")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile domain.Profile) error
}

// PlanRepository stores each user's current weekly workout plan. There is at
// most one current plan per user; a new generation replaces the old one.
type PlanRepository interface {
	UpsertCurrent(ctx context.Context, plan *domain.WeeklyPlan) error
	GetCurrent(ctx context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error)
}

// StatsRepository stores workout statistics. The current document is updated
// in place as exercises are checked off; History returns past periods for
// the statistics screen.
type StatsRepository interface {
	UpsertCurrent(ctx context.Context, stats *domain.WorkoutStats) error
	GetCurrent(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutStats, error)
	History(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutStats, error)
}
