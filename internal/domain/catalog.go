package domain

// CatalogEntry is one exercise in the shared exercise catalog, used by the
// template editor to offer sensible defaults when adding exercises.
type CatalogEntry struct {
	ID           string       `bson:"_id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	MuscleGroup  string       `bson:"muscleGroup" json:"muscleGroup"`
	Type         ExerciseType `bson:"type" json:"type"`
	DefaultSets  int          `bson:"defaultSets" json:"defaultSets"`
	DefaultReps  int          `bson:"defaultReps" json:"defaultReps"`
	DefaultWeight float64     `bson:"defaultWeight" json:"defaultWeight"`
	Progression  float64      `bson:"progression" json:"progression"`
}
