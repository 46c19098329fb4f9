package program

import (
	"gymzen/gymlog-app/internal/domain"
)

// DefaultTemplateID is the id of the built-in program. The default template
// is injected in memory and never stored or deleted.
const DefaultTemplateID = "default"

// MuscleGroups lists the tags offered by the template editor.
var MuscleGroups = []string{
	"Chest", "Back", "Shoulders", "Legs", "Biceps", "Triceps",
	"Core", "Traps", "Full Body", "Forearms", "Glutes", "Calves",
}

// LiftTarget is a headline goal for one of the main lifts.
type LiftTarget struct {
	Target float64 `json:"target"`
	Label  string  `json:"label"`
}

// Targets maps main-lift exercise ids to their goal weights.
var Targets = map[string]LiftTarget{
	"squat":       {Target: 90, Label: "90kg Squat"},
	"deadlift":    {Target: 120, Label: "120kg Deadlift"},
	"bench_press": {Target: 80, Label: "80kg Bench"},
}

// StrengthThresholds holds 1RM/bodyweight ratio floors per tier for one lift
// family. A lifter is classified at the highest tier whose floor the ratio
// meets; below every floor is Beginner.
type StrengthThresholds struct {
	Beginner     float64
	Novice       float64
	Intermediate float64
	Advanced     float64
}

// StrengthLevels is keyed by lift family: the token before the first
// underscore of an exercise id, upper-cased. "bench_press" -> "BENCH".
var StrengthLevels = map[string]StrengthThresholds{
	"SQUAT":    {Beginner: 0.75, Novice: 1.0, Intermediate: 1.5, Advanced: 2.0},
	"BENCH":    {Beginner: 0.5, Novice: 0.75, Intermediate: 1.1, Advanced: 1.5},
	"DEADLIFT": {Beginner: 1.0, Novice: 1.25, Intermediate: 1.8, Advanced: 2.5},
}

// DefaultTemplate returns the built-in 5-day strength & hypertrophy program.
// Returned fresh each call so callers may not mutate shared state.
func DefaultTemplate() domain.Template {
	return domain.Template{
		ID:        DefaultTemplateID,
		Name:      "5-Day Strength & Hypertrophy",
		IsDefault: true,
		Days: []domain.TemplateDay{
			{
				Day:  1,
				Name: "Chest & Triceps",
				Exercises: []domain.ExerciseSpec{
					{ID: "bench_press", Name: "Barbell Bench Press", Sets: 4, Reps: 6, StartWeight: 60, Type: domain.TypeCompound, MuscleGroup: "Chest", Progression: 2.5},
					{ID: "incline_db_press", Name: "Incline DB Press", Sets: 3, Reps: 8, StartWeight: 18, Type: domain.TypeAccessory, MuscleGroup: "Chest", Progression: 2},
					{ID: "chest_press", Name: "Chest Press Machine", Sets: 3, Reps: 10, StartWeight: 30, Type: domain.TypeAccessory, MuscleGroup: "Chest", Progression: 5},
					{ID: "tricep_pushdown", Name: "Tricep Pushdown", Sets: 3, Reps: 10, StartWeight: 20, Type: domain.TypeAccessory, MuscleGroup: "Triceps", Progression: 2.5},
					{ID: "overhead_tricep_ext", Name: "Overhead Tricep Extension", Sets: 3, Reps: 10, StartWeight: 15, Type: domain.TypeAccessory, MuscleGroup: "Triceps", Progression: 2.5},
				},
			},
			{
				Day:  2,
				Name: "Back & Biceps",
				Exercises: []domain.ExerciseSpec{
					{ID: "deadlift", Name: "Deadlift", Sets: 4, Reps: 5, StartWeight: 60, Type: domain.TypeCompound, MuscleGroup: "Back", Progression: 5},
					{ID: "lat_pulldown", Name: "Lat Pulldown", Sets: 4, Reps: 8, StartWeight: 45, Type: domain.TypeAccessory, MuscleGroup: "Back", Progression: 5},
					{ID: "barbell_row", Name: "Barbell Row", Sets: 3, Reps: 8, StartWeight: 40, Type: domain.TypeAccessory, MuscleGroup: "Back", Progression: 2.5},
					{ID: "seated_cable_row", Name: "Seated Cable Row", Sets: 3, Reps: 10, StartWeight: 40, Type: domain.TypeAccessory, MuscleGroup: "Back", Progression: 5},
					{ID: "barbell_curl", Name: "Barbell Curl", Sets: 3, Reps: 8, StartWeight: 20, Type: domain.TypeAccessory, MuscleGroup: "Biceps", Progression: 2.5},
					{ID: "hammer_curl", Name: "Hammer Curl", Sets: 3, Reps: 10, StartWeight: 12, Type: domain.TypeAccessory, MuscleGroup: "Biceps", Progression: 2},
				},
			},
			{
				Day:  3,
				Name: "Legs (Strength Focus)",
				Exercises: []domain.ExerciseSpec{
					{ID: "squat", Name: "Barbell Squat", Sets: 4, Reps: 6, StartWeight: 50, Type: domain.TypeCompound, MuscleGroup: "Legs", Progression: 2.5},
					{ID: "leg_press", Name: "Leg Press", Sets: 3, Reps: 10, StartWeight: 110, Type: domain.TypeAccessory, MuscleGroup: "Legs", Progression: 10},
					{ID: "rdl", Name: "Romanian Deadlift", Sets: 3, Reps: 8, StartWeight: 50, Type: domain.TypeAccessory, MuscleGroup: "Legs", Progression: 5},
					{ID: "leg_extension", Name: "Leg Extension", Sets: 3, Reps: 12, StartWeight: 55, Type: domain.TypeAccessory, MuscleGroup: "Legs", Progression: 5},
					{ID: "hamstring_curl", Name: "Hamstring Curl", Sets: 3, Reps: 12, StartWeight: 40, Type: domain.TypeAccessory, MuscleGroup: "Legs", Progression: 5},
					{ID: "calf_raises", Name: "Calf Raises", Sets: 4, Reps: 15, StartWeight: 40, Type: domain.TypeAccessory, MuscleGroup: "Legs", Progression: 5},
				},
			},
			{
				Day:  4,
				Name: "Shoulders & Core",
				Exercises: []domain.ExerciseSpec{
					{ID: "ohp", Name: "Overhead Barbell Press", Sets: 4, Reps: 6, StartWeight: 35, Type: domain.TypeCompound, MuscleGroup: "Shoulders", Progression: 2.5},
					{ID: "lateral_raises", Name: "Lateral Raises", Sets: 4, Reps: 12, StartWeight: 8, Type: domain.TypeAccessory, MuscleGroup: "Shoulders", Progression: 1},
					{ID: "rear_delt_fly", Name: "Rear Delt Fly", Sets: 3, Reps: 12, StartWeight: 30, Type: domain.TypeAccessory, MuscleGroup: "Shoulders", Progression: 5},
					{ID: "shrugs", Name: "Shrugs", Sets: 3, Reps: 10, StartWeight: 60, Type: domain.TypeAccessory, MuscleGroup: "Traps", Progression: 10},
					{ID: "hanging_leg_raises", Name: "Hanging Leg Raises", Sets: 3, Reps: 12, StartWeight: 0, Type: domain.TypeAccessory, MuscleGroup: "Core", Progression: 0},
					{ID: "plank", Name: "Plank", Sets: 3, Reps: 1, StartWeight: 60, Unit: "sec", Type: domain.TypeAccessory, MuscleGroup: "Core", Progression: 0},
				},
			},
			{
				Day:  5,
				Name: "Full Body Progression",
				Exercises: []domain.ExerciseSpec{
					{ID: "squat_d5", Name: "Barbell Squat", Sets: 3, Reps: 5, StartWeight: 50, Type: domain.TypeCompound, MuscleGroup: "Legs", Progression: 2.5, SyncWith: "squat"},
					{ID: "bench_press_d5", Name: "Barbell Bench Press", Sets: 3, Reps: 5, StartWeight: 60, Type: domain.TypeCompound, MuscleGroup: "Chest", Progression: 2.5, SyncWith: "bench_press"},
					{ID: "deadlift_d5", Name: "Deadlift", Sets: 3, Reps: 3, StartWeight: 60, Type: domain.TypeCompound, MuscleGroup: "Back", Progression: 5, SyncWith: "deadlift"},
					{ID: "pull_ups", Name: "Pull-ups", Sets: 3, Reps: 8, StartWeight: 0, Type: domain.TypeAccessory, MuscleGroup: "Back", Progression: 0},
					{ID: "farmers_walk", Name: "Farmer's Walk", Sets: 3, Reps: 1, StartWeight: 40, Unit: "rounds", Type: domain.TypeAccessory, MuscleGroup: "Full Body", Progression: 5},
				},
			},
		},
	}
}
