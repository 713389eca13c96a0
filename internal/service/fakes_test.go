package service

import (
	"context"
	"time"

	"myfitness/server/internal/domain"
	"myfitness/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return user.ID, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id primitive.ObjectID, profile domain.Profile) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Profile = profile
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// fakePlanRepo is an in-memory repository.PlanRepository.
type fakePlanRepo struct {
	plans   map[primitive.ObjectID]*domain.WeeklyPlan
	upserts int
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[primitive.ObjectID]*domain.WeeklyPlan{}}
}

func (f *fakePlanRepo) UpsertCurrent(_ context.Context, plan *domain.WeeklyPlan) error {
	plan.UpdatedAt = time.Now().UTC()
	stored := *plan
	f.plans[plan.UserID] = &stored
	f.upserts++
	return nil
}

func (f *fakePlanRepo) GetCurrent(_ context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error) {
	p, ok := f.plans[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

// fakeStatsRepo is an in-memory repository.StatsRepository holding a single
// current document per user plus an append-only history.
type fakeStatsRepo struct {
	current map[primitive.ObjectID]*domain.WorkoutStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{current: map[primitive.ObjectID]*domain.WorkoutStats{}}
}

func (f *fakeStatsRepo) UpsertCurrent(_ context.Context, stats *domain.WorkoutStats) error {
	stats.LastUpdated = time.Now().UTC()
	stored := *stats
	f.current[stats.UserID] = &stored
	return nil
}

func (f *fakeStatsRepo) GetCurrent(_ context.Context, userID primitive.ObjectID) (*domain.WorkoutStats, error) {
	s, ok := f.current[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeStatsRepo) History(_ context.Context, userID primitive.ObjectID, _ int64) ([]domain.WorkoutStats, error) {
	s, ok := f.current[userID]
	if !ok {
		return []domain.WorkoutStats{}, nil
	}
	return []domain.WorkoutStats{*s}, nil
}

// fakeGenerator is a canned PlanGenerator.
type fakeGenerator struct {
	days   []domain.DayPlan
	err    error
	called bool
}

func (f *fakeGenerator) GeneratePlan(_ context.Context, _ domain.Profile) ([]domain.DayPlan, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}
