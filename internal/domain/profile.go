package domain

import (
	"time"
)

// Sex selects the BMR formula constants and micronutrient reference values.
// It is not used for any gating logic.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel maps to a TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

// Profile is a user's biometric profile, keyed by user id. IsNewUser routes
// first-time users through onboarding before anything else is reachable.
type Profile struct {
	UserID           string        `bson:"_id,omitempty" json:"-"`
	Name             string        `bson:"name,omitempty" json:"name,omitempty"`
	Bodyweight       float64       `bson:"bodyweight" json:"bodyweight"` // kg
	Height           float64       `bson:"height" json:"height"`         // cm
	Age              int           `bson:"age" json:"age"`
	Sex              Sex           `bson:"gender" json:"gender"`
	ActivityLevel    ActivityLevel `bson:"activityLevel" json:"activityLevel"`
	Goal             string        `bson:"goal,omitempty" json:"goal,omitempty"`
	PhotoObjectKey   string        `bson:"photoObjectKey,omitempty" json:"-"`
	RestTimerSeconds int           `bson:"restTimerSeconds,omitempty" json:"restTimerSeconds,omitempty"`
	IsNewUser        bool          `bson:"isNewUser" json:"isNewUser"`
	UpdatedAt        time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// DefaultProfile is what a user gets before onboarding has run.
func DefaultProfile(userID string) *Profile {
	return &Profile{
		UserID:        userID,
		Bodyweight:    75,
		Height:        175,
		Age:           25,
		Sex:           SexMale,
		ActivityLevel: ActivityModerate,
		IsNewUser:     true,
	}
}
