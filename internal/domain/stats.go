package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStats accumulates a user's progress for one tracking period (a week).
// The "current" document is updated in place as the user checks off sets;
// older documents form the history shown on the statistics screen.
type WorkoutStats struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID             primitive.ObjectID `bson:"userId" json:"userId"`
	Period             time.Time          `bson:"period" json:"period"` // Monday of the tracked week

	CompletedExercises map[string]int     `bson:"completedExercises" json:"completedExercises"` // exercise name -> sets completed
	TotalCalories      int                `bson:"totalCaloriesBurned" json:"totalCaloriesBurned"`
	DaysCompleted      int                `bson:"daysCompleted" json:"daysCompleted"`
	LastUpdated        time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}
