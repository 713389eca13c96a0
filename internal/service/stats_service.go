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
	ErrStatsNotFound   = errors.New("no workout stats recorded")
	ErrInvalidStats    = errors.New("stats validation failed")
	defaultHistorySize = int64(12)
)

// --- Service Interface ---
type StatsService interface {
	// RecordStats replaces this week's stats document with the given values.
	// The client owns the accumulation; the server validates and stores.
	RecordStats(ctx context.Context, userID primitive.ObjectID, stats domain.WorkoutStats) (*domain.WorkoutStats, error)
	GetCurrentStats(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutStats, error)
	GetHistory(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutStats, error)
}

// --- Service Implementation ---

type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) RecordStats(ctx context.Context, userID primitive.ObjectID, stats domain.WorkoutStats) (*domain.WorkoutStats, error) {
	if stats.TotalCalories < 0 || stats.DaysCompleted < 0 || stats.DaysCompleted > 7 {
		return nil, ErrInvalidStats
	}
	for _, sets := range stats.CompletedExercises {
		if sets < 0 {
			return nil, ErrInvalidStats
		}
	}

	stats.UserID = userID
	if stats.CompletedExercises == nil {
		stats.CompletedExercises = map[string]int{}
	}

	if err := s.statsRepo.UpsertCurrent(ctx, &stats); err != nil {
		return nil, err
	}

	return s.GetCurrentStats(ctx, userID)
}

func (s *statsService) GetCurrentStats(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutStats, error) {
	stats, err := s.statsRepo.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStatsNotFound
		}
		return nil, err
	}
	return stats, nil
}

func (s *statsService) GetHistory(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutStats, error) {
	if limit <= 0 {
		limit = defaultHistorySize
	}
	return s.statsRepo.History(ctx, userID, limit)
}
