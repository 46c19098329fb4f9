package domain

import (
	"time"
)

// ExerciseType distinguishes heavy multi-joint lifts from isolation work.
type ExerciseType string

const (
	TypeCompound  ExerciseType = "compound"
	TypeAccessory ExerciseType = "accessory"
)

// ExerciseSpec is one exercise slot within a template day. The ID is stable
// across sessions and is what history matching keys on. SyncWith lets two
// differently named entries (e.g. "squat" and "squat_d5") share history and
// progression as one logical lift.
type ExerciseSpec struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Sets        int          `bson:"sets" json:"sets"`
	Reps        int          `bson:"reps" json:"reps"`
	StartWeight float64      `bson:"startWeight" json:"startWeight"`
	Progression float64      `bson:"progression" json:"progression"` // kg added per successful session; 0 for bodyweight moves
	Type        ExerciseType `bson:"type" json:"type"`
	MuscleGroup string       `bson:"muscleGroup" json:"muscleGroup"`
	Unit        string       `bson:"unit,omitempty" json:"unit,omitempty"` // e.g. "sec" for timed holds
	SyncWith    string       `bson:"syncWith,omitempty" json:"syncWith,omitempty"`
}

// TemplateDay is one day's ordered exercise list within a Template.
type TemplateDay struct {
	Day       int            `bson:"day" json:"day"`
	Name      string         `bson:"name" json:"name"`
	Exercises []ExerciseSpec `bson:"exercises" json:"exercises"`
}

// Template is a saved multi-day training program. Exactly one template, the
// built-in default, has IsDefault set; it is injected by the service layer
// and never persisted or deleted.
type Template struct {
	ID        string        `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"userId,omitempty" json:"-"`
	Name      string        `bson:"name" json:"name"`
	IsDefault bool          `bson:"isDefault" json:"isDefault"`
	Days      []TemplateDay `bson:"days" json:"days"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
