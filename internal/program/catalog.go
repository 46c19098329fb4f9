package program

import (
	"gymzen/gymlog-app/internal/domain"
)

// BuiltinCatalog returns the bundled exercise catalog used to seed the
// catalog collection on first run, and as the local fallback when seeding
// fails.
func BuiltinCatalog() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		// Chest
		{ID: "barbell_bench_press", Name: "Barbell Bench Press", MuscleGroup: "Chest", Type: domain.TypeCompound, DefaultSets: 4, DefaultReps: 6, DefaultWeight: 60, Progression: 2.5},
		{ID: "incline_barbell_press", Name: "Incline Barbell Press", MuscleGroup: "Chest", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 40, Progression: 2.5},
		{ID: "dumbbell_bench_press", Name: "Dumbbell Bench Press", MuscleGroup: "Chest", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 20, Progression: 2},
		{ID: "incline_db_press", Name: "Incline Dumbbell Press", MuscleGroup: "Chest", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 18, Progression: 2},
		{ID: "chest_press_machine", Name: "Chest Press Machine", MuscleGroup: "Chest", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 30, Progression: 5},
		{ID: "cable_chest_fly", Name: "Cable Chest Fly", MuscleGroup: "Chest", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 10, Progression: 2.5},
		{ID: "dumbbell_fly", Name: "Dumbbell Fly", MuscleGroup: "Chest", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 12, Progression: 2},
		{ID: "push_ups", Name: "Push-ups", MuscleGroup: "Chest", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 15, DefaultWeight: 0, Progression: 0},
		{ID: "dips_chest", Name: "Dips (Chest Focus)", MuscleGroup: "Chest", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 0, Progression: 0},

		// Back
		{ID: "deadlift", Name: "Deadlift", MuscleGroup: "Back", Type: domain.TypeCompound, DefaultSets: 4, DefaultReps: 5, DefaultWeight: 60, Progression: 5},
		{ID: "sumo_deadlift", Name: "Sumo Deadlift", MuscleGroup: "Back", Type: domain.TypeCompound, DefaultSets: 4, DefaultReps: 5, DefaultWeight: 60, Progression: 5},
		{ID: "barbell_row", Name: "Barbell Row", MuscleGroup: "Back", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 40, Progression: 2.5},
		{ID: "dumbbell_row", Name: "Dumbbell Row", MuscleGroup: "Back", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 20, Progression: 2},
		{ID: "lat_pulldown", Name: "Lat Pulldown", MuscleGroup: "Back", Type: domain.TypeAccessory, DefaultSets: 4, DefaultReps: 8, DefaultWeight: 45, Progression: 5},
		{ID: "seated_cable_row", Name: "Seated Cable Row", MuscleGroup: "Back", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 40, Progression: 5},
		{ID: "pull_ups", Name: "Pull-ups", MuscleGroup: "Back", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 0, Progression: 0},
		{ID: "chin_ups", Name: "Chin-ups", MuscleGroup: "Back", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 0, Progression: 0},
		{ID: "t_bar_row", Name: "T-Bar Row", MuscleGroup: "Back", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 30, Progression: 5},
		{ID: "machine_row", Name: "Machine Row", MuscleGroup: "Back", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 40, Progression: 5},

		// Shoulders
		{ID: "overhead_press", Name: "Overhead Barbell Press", MuscleGroup: "Shoulders", Type: domain.TypeCompound, DefaultSets: 4, DefaultReps: 6, DefaultWeight: 35, Progression: 2.5},
		{ID: "seated_db_press", Name: "Seated Dumbbell Press", MuscleGroup: "Shoulders", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 16, Progression: 2},
		{ID: "arnold_press", Name: "Arnold Press", MuscleGroup: "Shoulders", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 14, Progression: 2},
		{ID: "lateral_raises", Name: "Lateral Raises", MuscleGroup: "Shoulders", Type: domain.TypeAccessory, DefaultSets: 4, DefaultReps: 12, DefaultWeight: 8, Progression: 1},
		{ID: "front_raises", Name: "Front Raises", MuscleGroup: "Shoulders", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 8, Progression: 1},
		{ID: "rear_delt_fly", Name: "Rear Delt Fly", MuscleGroup: "Shoulders", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 8, Progression: 1},
		{ID: "face_pulls", Name: "Face Pulls", MuscleGroup: "Shoulders", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 15, DefaultWeight: 15, Progression: 2.5},
		{ID: "upright_row", Name: "Upright Row", MuscleGroup: "Shoulders", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 20, Progression: 2.5},

		// Legs
		{ID: "barbell_squat", Name: "Barbell Squat", MuscleGroup: "Legs", Type: domain.TypeCompound, DefaultSets: 4, DefaultReps: 6, DefaultWeight: 50, Progression: 2.5},
		{ID: "front_squat", Name: "Front Squat", MuscleGroup: "Legs", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 6, DefaultWeight: 40, Progression: 2.5},
		{ID: "goblet_squat", Name: "Goblet Squat", MuscleGroup: "Legs", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 20, Progression: 2},
		{ID: "leg_press", Name: "Leg Press", MuscleGroup: "Legs", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 110, Progression: 10},
		{ID: "hack_squat", Name: "Hack Squat", MuscleGroup: "Legs", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 60, Progression: 5},
		{ID: "romanian_deadlift", Name: "Romanian Deadlift", MuscleGroup: "Legs", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 50, Progression: 5},
		{ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", MuscleGroup: "Legs", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 14, Progression: 2},
		{ID: "walking_lunges", Name: "Walking Lunges", MuscleGroup: "Legs", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 14, Progression: 2},
		{ID: "leg_extension", Name: "Leg Extension", MuscleGroup: "Legs", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 55, Progression: 5},
		{ID: "hamstring_curl", Name: "Hamstring Curl", MuscleGroup: "Legs", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 40, Progression: 5},

		// Glutes
		{ID: "hip_thrust", Name: "Hip Thrust", MuscleGroup: "Glutes", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 60, Progression: 5},
		{ID: "glute_bridge", Name: "Glute Bridge", MuscleGroup: "Glutes", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 40, Progression: 5},

		// Calves
		{ID: "standing_calf_raise", Name: "Standing Calf Raise", MuscleGroup: "Calves", Type: domain.TypeAccessory, DefaultSets: 4, DefaultReps: 15, DefaultWeight: 40, Progression: 5},
		{ID: "seated_calf_raise", Name: "Seated Calf Raise", MuscleGroup: "Calves", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 15, DefaultWeight: 30, Progression: 5},

		// Biceps
		{ID: "barbell_curl", Name: "Barbell Curl", MuscleGroup: "Biceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 20, Progression: 2.5},
		{ID: "ez_bar_curl", Name: "EZ Bar Curl", MuscleGroup: "Biceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 20, Progression: 2.5},
		{ID: "dumbbell_curl", Name: "Dumbbell Curl", MuscleGroup: "Biceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 12, Progression: 2},
		{ID: "hammer_curl", Name: "Hammer Curl", MuscleGroup: "Biceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 12, Progression: 2},
		{ID: "preacher_curl", Name: "Preacher Curl", MuscleGroup: "Biceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 15, Progression: 2.5},

		// Triceps
		{ID: "tricep_pushdown", Name: "Tricep Pushdown", MuscleGroup: "Triceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 20, Progression: 2.5},
		{ID: "rope_pushdown", Name: "Rope Pushdown", MuscleGroup: "Triceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 15, Progression: 2.5},
		{ID: "overhead_tricep_ext", Name: "Overhead Tricep Extension", MuscleGroup: "Triceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 15, Progression: 2.5},
		{ID: "skull_crushers", Name: "Skull Crushers", MuscleGroup: "Triceps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 20, Progression: 2.5},
		{ID: "close_grip_bench", Name: "Close Grip Bench Press", MuscleGroup: "Triceps", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 8, DefaultWeight: 40, Progression: 2.5},
		{ID: "dips_tricep", Name: "Dips (Tricep Focus)", MuscleGroup: "Triceps", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 0, Progression: 0},

		// Traps
		{ID: "barbell_shrugs", Name: "Barbell Shrugs", MuscleGroup: "Traps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 60, Progression: 10},
		{ID: "dumbbell_shrugs", Name: "Dumbbell Shrugs", MuscleGroup: "Traps", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 20, Progression: 2},

		// Core
		{ID: "hanging_leg_raise", Name: "Hanging Leg Raises", MuscleGroup: "Core", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 12, DefaultWeight: 0, Progression: 0},
		{ID: "cable_crunch", Name: "Cable Crunch", MuscleGroup: "Core", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 15, DefaultWeight: 25, Progression: 2.5},
		{ID: "ab_rollout", Name: "Ab Rollout", MuscleGroup: "Core", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 0, Progression: 0},
		{ID: "plank", Name: "Plank", MuscleGroup: "Core", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 60, DefaultWeight: 0, Progression: 0},
		{ID: "russian_twist", Name: "Russian Twist", MuscleGroup: "Core", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 20, DefaultWeight: 10, Progression: 2},

		// Forearms
		{ID: "wrist_curl", Name: "Wrist Curl", MuscleGroup: "Forearms", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 15, DefaultWeight: 10, Progression: 1},

		// Full body
		{ID: "farmers_walk", Name: "Farmer's Walk", MuscleGroup: "Full Body", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 1, DefaultWeight: 40, Progression: 5},
		{ID: "clean_and_press", Name: "Clean and Press", MuscleGroup: "Full Body", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 5, DefaultWeight: 30, Progression: 2.5},
		{ID: "kettlebell_swing", Name: "Kettlebell Swing", MuscleGroup: "Full Body", Type: domain.TypeCompound, DefaultSets: 3, DefaultReps: 15, DefaultWeight: 16, Progression: 4},
		{ID: "burpees", Name: "Burpees", MuscleGroup: "Full Body", Type: domain.TypeAccessory, DefaultSets: 3, DefaultReps: 10, DefaultWeight: 0, Progression: 0},
	}
}
