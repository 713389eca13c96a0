package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"myfitness/server/internal/ai"
	"myfitness/server/internal/domain"
)

func newPlanTestUser(t *testing.T, userRepo *fakeUserRepo, complete bool) primitive.ObjectID {
	t.Helper()
	user := &domain.User{
		FirstName:    "Alex",
		Email:        "alex@example.com",
		PasswordHash: "hash",
	}
	if complete {
		user.Profile = domain.Profile{Age: 25, HeightCm: 175, WeightKg: 70, Goal: "Build muscle"}
	}
	id, err := userRepo.Create(context.Background(), user)
	require.NoError(t, err)
	return id
}

func TestGenerateWeeklyPlanPersists(t *testing.T) {
	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	gen := &fakeGenerator{days: []domain.DayPlan{
		{Day: "Monday", Type: "Strength Training", MuscleGroup: "Upper Body", ExerciseIDs: []string{"0007"}, Duration: 45, Calories: 300},
	}}

	svc := NewPlanService(userRepo, planRepo, gen)
	userID := newPlanTestUser(t, userRepo, true)

	plan, err := svc.GenerateWeeklyPlan(context.Background(), userID)
	require.NoError(t, err)

	assert.NotEmpty(t, plan.PlanID)
	assert.Equal(t, userID, plan.UserID)
	require.Len(t, plan.Days, 1)
	assert.Equal(t, "Monday", plan.Days[0].Day)
	assert.Equal(t, 1, planRepo.upserts)

	stored, err := svc.GetCurrentPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, plan.PlanID, stored.PlanID)
}

func TestGenerateWeeklyPlanReplacesPrevious(t *testing.T) {
	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	gen := &fakeGenerator{days: []domain.DayPlan{{Day: "Monday", Type: "Cardio"}}}

	svc := NewPlanService(userRepo, planRepo, gen)
	userID := newPlanTestUser(t, userRepo, true)

	first, err := svc.GenerateWeeklyPlan(context.Background(), userID)
	require.NoError(t, err)
	second, err := svc.GenerateWeeklyPlan(context.Background(), userID)
	require.NoError(t, err)

	assert.NotEqual(t, first.PlanID, second.PlanID)

	current, err := svc.GetCurrentPlan(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, second.PlanID, current.PlanID)
}

func TestGenerateWeeklyPlanIncompleteProfile(t *testing.T) {
	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	gen := &fakeGenerator{}

	svc := NewPlanService(userRepo, planRepo, gen)
	userID := newPlanTestUser(t, userRepo, false)

	_, err := svc.GenerateWeeklyPlan(context.Background(), userID)
	assert.ErrorIs(t, err, ErrProfileIncomplete)
	assert.False(t, gen.called, "generator must not run on incomplete profiles")
	assert.Zero(t, planRepo.upserts)
}

func TestGenerateWeeklyPlanGeneratorFailure(t *testing.T) {
	userRepo := newFakeUserRepo()
	planRepo := newFakePlanRepo()
	gen := &fakeGenerator{err: ai.ErrMissingAPIKey}

	svc := NewPlanService(userRepo, planRepo, gen)
	userID := newPlanTestUser(t, userRepo, true)

	_, err := svc.GenerateWeeklyPlan(context.Background(), userID)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, ai.ErrMissingAPIKey, "pipeline error stays inspectable")
	assert.Zero(t, planRepo.upserts, "a failed generation must not touch the stored plan")
}

func TestGenerateWeeklyPlanUnknownUser(t *testing.T) {
	svc := NewPlanService(newFakeUserRepo(), newFakePlanRepo(), &fakeGenerator{})

	_, err := svc.GenerateWeeklyPlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetCurrentPlanNotFound(t *testing.T) {
	svc := NewPlanService(newFakeUserRepo(), newFakePlanRepo(), &fakeGenerator{})

	_, err := svc.GetCurrentPlan(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
