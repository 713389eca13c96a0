package service

import (
	"context"
	"errors"

	"myfitness/server/internal/domain"
	"myfitness/server/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanNotFound     = errors.New("no current workout plan")
	ErrGenerationFailed = errors.New("plan generation failed")
)

// PlanGenerator produces day plans for a profile. Satisfied by *ai.Generator.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, profile domain.Profile) ([]domain.DayPlan, error)
}

// --- Service Interface ---
type PlanService interface {
	// GenerateWeeklyPlan runs the AI pipeline for the user and persists the
	// result as their current workout. The previous plan is replaced only on
	// success; a failed generation leaves it untouched.
	GenerateWeeklyPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error)
	GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error)
}

// --- Service Implementation ---

type planService struct {
	userRepo  repository.UserRepository
	planRepo  repository.PlanRepository
	generator PlanGenerator
	log       *logrus.Entry
}

// NewPlanService creates a new instance of planService.
func NewPlanService(userRepo repository.UserRepository, planRepo repository.PlanRepository, generator PlanGenerator) PlanService {
	return &planService{
		userRepo:  userRepo,
		planRepo:  planRepo,
		generator: generator,
		log:       logrus.WithField("component", "plan-service"),
	}
}

func (s *planService) GenerateWeeklyPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.Profile.IsComplete() {
		return nil, ErrProfileIncomplete
	}

	days, err := s.generator.GeneratePlan(ctx, user.Profile)
	if err != nil {
		s.log.WithError(err).WithField("userId", userID.Hex()).Warn("plan generation failed")
		// The pipeline's own error taxonomy stays available via errors.Is/As;
		// this sentinel gives handlers a single "no plan this time" signal.
		return nil, errors.Join(ErrGenerationFailed, err)
	}

	plan := &domain.WeeklyPlan{
		PlanID: uuid.NewString(),
		UserID: userID,
		Days:   days,
	}

	if err := s.planRepo.UpsertCurrent(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

func (s *planService) GetCurrentPlan(ctx context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error) {
	plan, err := s.planRepo.GetCurrent(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}
