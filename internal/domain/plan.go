package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayPlan is one day of a generated weekly workout plan.
type DayPlan struct {
	Day         string   `bson:"day" json:"day"`   // Weekday name, e.g. "Monday"
	Type        string   `bson:"type" json:"type"` // e.g. "Strength Training", "Cardio", "Rest"
	MuscleGroup string   `bson:"muscleGroup" json:"muscleGroup"`
	ExerciseIDs []string `bson:"exerciseIds" json:"exerciseIds"` // Catalog ids; empty on rest days
	Duration    int      `bson:"duration" json:"duration"`       // Minutes
	Calories    int      `bson:"calories" json:"calories"`       // Estimate
	Notes       string   `bson:"notes" json:"notes"`
}

// IsRestDay reports whether the entry carries no exercises.
func (d DayPlan) IsRestDay() bool {
	return len(d.ExerciseIDs) == 0
}

// WeeklyPlan is the per-user "current workout" document. A fresh plan is
// produced on every successful generation and replaces the previous one.
// Days are conventionally Monday-first but order is not guaranteed by the
// generator, so callers should look days up by name rather than by index.
type WeeklyPlan struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PlanID    string             `bson:"planId" json:"planId"` // Stable identifier of this generation
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Days      []DayPlan          `bson:"days" json:"days"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Day returns the entry for the named weekday, if present.
func (p *WeeklyPlan) Day(name string) (DayPlan, bool) {
	for _, d := range p.Days {
		if d.Day == name {
			return d, true
		}
	}
	return DayPlan{}, false
}
