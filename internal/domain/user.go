package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user of the app.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Profile      Profile            `bson:"profile" json:"profile"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Profile holds the fitness details collected after registration.
// Plan generation needs all of the required fields filled in.
type Profile struct {
	Age      int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender   string `bson:"gender,omitempty" json:"gender,omitempty"` // Optional, older profiles may not have it
	HeightCm int    `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg int    `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	Goal     string `bson:"goal,omitempty" json:"goal,omitempty"` // e.g. "Build muscle", "Lose weight"
}

// IsComplete reports whether the profile has everything plan generation needs.
// Gender is intentionally not required.
func (p Profile) IsComplete() bool {
	return p.Age > 0 && p.HeightCm > 0 && p.WeightKg > 0 && p.Goal != ""
}
