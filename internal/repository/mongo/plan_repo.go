package mongo

import (
	"context"
	"errors"
	"time"

	"myfitness/server/internal/domain"
	"myfitness/server/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const planCollectionName = "workout_plans"

// mongoPlanRepository implements repository.PlanRepository.
type mongoPlanRepository struct {
	collection *mongo.Collection
}

// NewMongoPlanRepository creates a new plan repository backed by MongoDB.
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	return &mongoPlanRepository{
		collection: db.Collection(planCollectionName),
	}
}

// UpsertCurrent stores the plan as the user's current workout, replacing any
// previous one. The userId unique index guarantees a single current document
// per user.
func (r *mongoPlanRepository) UpsertCurrent(ctx context.Context, plan *domain.WeeklyPlan) error {
	if plan.UserID == primitive.NilObjectID {
		return errors.New("user ID is required to store a plan")
	}

	plan.UpdatedAt = time.Now().UTC()

	filter := bson.M{"userId": plan.UserID}
	update := bson.M{
		"$set": bson.M{
			"planId":    plan.PlanID,
			"days":      plan.Days,
			"updatedAt": plan.UpdatedAt,
		},
		"$setOnInsert": bson.M{"userId": plan.UserID},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetCurrent retrieves the user's current plan.
func (r *mongoPlanRepository) GetCurrent(ctx context.Context, userID primitive.ObjectID) (*domain.WeeklyPlan, error) {
	var plan domain.WeeklyPlan
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// EnsurePlanIndexes creates necessary indexes for the workout_plans collection.
func EnsurePlanIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	// Index creation failure is not fatal; queries degrade, writes still work.
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.WithError(err).WithField("collection", collection.Name()).Warn("failed to create indexes")
	}
}
