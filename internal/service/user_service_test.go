package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"myfitness/server/internal/domain"
)

func TestUpdateProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	userID := newPlanTestUser(t, userRepo, false)

	user, err := svc.UpdateProfile(context.Background(), userID, domain.Profile{
		Age: 25, Gender: "female", HeightCm: 168, WeightKg: 62, Goal: "Lose weight",
	})
	require.NoError(t, err)
	assert.True(t, user.Profile.IsComplete())
	assert.Equal(t, "Lose weight", user.Profile.Goal)
}

func TestUpdateProfileValidation(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	userID := newPlanTestUser(t, userRepo, false)

	for name, profile := range map[string]domain.Profile{
		"zero age":       {HeightCm: 170, WeightKg: 70, Goal: "Build muscle"},
		"implausible":    {Age: 150, HeightCm: 170, WeightKg: 70, Goal: "Build muscle"},
		"missing height": {Age: 30, WeightKg: 70, Goal: "Build muscle"},
		"missing goal":   {Age: 30, HeightCm: 170, WeightKg: 70},
	} {
		_, err := svc.UpdateProfile(context.Background(), userID, profile)
		assert.ErrorIs(t, err, ErrInvalidProfile, name)
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetUser(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserClearsHash(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	userID := newPlanTestUser(t, userRepo, true)

	user, err := svc.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
