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

const statsCollectionName = "workout_stats"

// mongoStatsRepository implements repository.StatsRepository.
type mongoStatsRepository struct {
	collection *mongo.Collection
}

// NewMongoStatsRepository creates a new stats repository backed by MongoDB.
func NewMongoStatsRepository(db *mongo.Database) repository.StatsRepository {
	return &mongoStatsRepository{
		collection: db.Collection(statsCollectionName),
	}
}

// currentPeriod returns the Monday of the week containing t, which keys the
// "current" stats document. Past weeks become history automatically.
func currentPeriod(t time.Time) time.Time {
	t = t.UTC().Truncate(24 * time.Hour)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return t.AddDate(0, 0, 1-weekday)
}

// UpsertCurrent writes the stats document for the current week.
func (r *mongoStatsRepository) UpsertCurrent(ctx context.Context, stats *domain.WorkoutStats) error {
	if stats.UserID == primitive.NilObjectID {
		return errors.New("user ID is required to store stats")
	}

	now := time.Now().UTC()
	stats.LastUpdated = now

	filter := bson.M{"userId": stats.UserID, "period": currentPeriod(now)}
	update := bson.M{
		"$set": bson.M{
			"completedExercises":  stats.CompletedExercises,
			"totalCaloriesBurned": stats.TotalCalories,
			"daysCompleted":       stats.DaysCompleted,
			"lastUpdated":         stats.LastUpdated,
		},
		"$setOnInsert": bson.M{"userId": stats.UserID, "period": currentPeriod(now)},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetCurrent retrieves this week's stats document.
func (r *mongoStatsRepository) GetCurrent(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutStats, error) {
	var stats domain.WorkoutStats
	filter := bson.M{"userId": userID, "period": currentPeriod(time.Now())}

	err := r.collection.FindOne(ctx, filter).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &stats, nil
}

// History returns the user's stats documents, newest first.
func (r *mongoStatsRepository) History(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.WorkoutStats, error) {
	var history []domain.WorkoutStats
	filter := bson.M{"userId": userID}

	findOptions := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})
	if limit > 0 {
		findOptions = findOptions.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &history); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// EnsureStatsIndexes creates necessary indexes for the workout_stats collection.
func EnsureStatsIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "period", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "lastUpdated", Value: -1}},
			Options: options.Index(),
		},
	}

	// Index creation failure is not fatal; queries degrade, writes still work.
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logrus.WithError(err).WithField("collection", collection.Name()).Warn("failed to create indexes")
	}
}
