package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoggedSet is a single set within a session exercise. PrevWeight is the
// weight achieved in the same slot last time; it is recomputed every time a
// session is built and never persisted as authoritative data.
type LoggedSet struct {
	Weight     float64 `bson:"weight" json:"weight"`
	Reps       int     `bson:"reps" json:"reps"`
	Completed  bool    `bson:"completed" json:"completed"`
	PrevWeight float64 `bson:"-" json:"prevWeight"`
}

// SessionExercise copies the identity fields of the originating ExerciseSpec
// and carries the ordered sets logged for it. An exercise in an active
// session always has at least one set.
type SessionExercise struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Type        ExerciseType `bson:"type" json:"type"`
	MuscleGroup string       `bson:"muscleGroup" json:"muscleGroup"`
	Unit        string       `bson:"unit,omitempty" json:"unit,omitempty"`
	Sets        []LoggedSet  `bson:"sets" json:"sets"`
}

// WorkoutSession is one logged workout. It is created in memory by the
// session builder, mutated only by the session editor while in progress, and
// becomes immutable history once persisted. Date is the user-adjustable
// logical session date; LoggedAt is the wall-clock finalization timestamp.
type WorkoutSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"-"`
	Day       int                `bson:"day" json:"day"`
	Name      string             `bson:"name" json:"name"`
	Exercises []SessionExercise  `bson:"exercises" json:"exercises"`
	Date      time.Time          `bson:"date" json:"date"`
	LoggedAt  time.Time          `bson:"loggedAt" json:"loggedAt"`
}
