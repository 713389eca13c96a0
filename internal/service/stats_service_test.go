package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"myfitness/server/internal/domain"
)

func TestRecordStatsRoundTrip(t *testing.T) {
	svc := NewStatsService(newFakeStatsRepo())
	userID := primitive.NewObjectID()

	stats, err := svc.RecordStats(context.Background(), userID, domain.WorkoutStats{
		CompletedExercises: map[string]int{"Push Ups": 3},
		TotalCalories:      300,
		DaysCompleted:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, stats.UserID)
	assert.Equal(t, 300, stats.TotalCalories)
	assert.Equal(t, map[string]int{"Push Ups": 3}, stats.CompletedExercises)
	assert.False(t, stats.LastUpdated.IsZero())

	current, err := svc.GetCurrentStats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, current.DaysCompleted)
}

func TestRecordStatsValidation(t *testing.T) {
	svc := NewStatsService(newFakeStatsRepo())
	userID := primitive.NewObjectID()

	for name, stats := range map[string]domain.WorkoutStats{
		"negative calories": {TotalCalories: -1},
		"negative days":     {DaysCompleted: -1},
		"too many days":     {DaysCompleted: 8},
		"negative sets":     {CompletedExercises: map[string]int{"Push Ups": -1}},
	} {
		_, err := svc.RecordStats(context.Background(), userID, stats)
		assert.ErrorIs(t, err, ErrInvalidStats, name)
	}
}

func TestGetCurrentStatsNotFound(t *testing.T) {
	svc := NewStatsService(newFakeStatsRepo())

	_, err := svc.GetCurrentStats(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrStatsNotFound)
}

func TestGetHistoryEmpty(t *testing.T) {
	svc := NewStatsService(newFakeStatsRepo())

	history, err := svc.GetHistory(context.Background(), primitive.NewObjectID(), 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}
