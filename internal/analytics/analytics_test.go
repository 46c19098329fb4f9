package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gymzen/gymlog-app/internal/domain"
)

func TestOneRepMax(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		reps   int
		want   float64
	}{
		{"single rep is the max itself", 100, 1, 100},
		{"zero reps yields zero", 100, 0, 0},
		{"epley at five reps", 100, 5, 100 * (1 + 5.0/30)},
		{"zero weight propagates", 0, 5, 0},
		{"negative weight propagates", -10, 3, -10 * (1 + 3.0/30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, OneRepMax(tt.weight, tt.reps), 1e-9)
		})
	}
}

func TestOneRepMaxMonotonic(t *testing.T) {
	// For reps >= 1 the estimate must not decrease in either input.
	prev := 0.0
	for reps := 1; reps <= 12; reps++ {
		got := OneRepMax(80, reps)
		assert.GreaterOrEqual(t, got, prev, "reps=%d", reps)
		prev = got
	}
	assert.Greater(t, OneRepMax(90, 5), OneRepMax(80, 5))
}

func TestSetVolume(t *testing.T) {
	sets := []domain.LoggedSet{
		{Weight: 100, Reps: 5},
		{Weight: 80, Reps: 8},
	}
	assert.Equal(t, 1140.0, SetVolume(sets))
	assert.Equal(t, 0.0, SetVolume(nil))
}

func TestStrengthLevel(t *testing.T) {
	tests := []struct {
		name       string
		exerciseID string
		bodyweight float64
		oneRM      float64
		want       string
	}{
		{"bench ratio 1.1 is intermediate", "bench_press", 80, 88, LevelIntermediate},
		{"squat ratio 2.0 is advanced", "squat", 70, 140, LevelAdvanced},
		{"deadlift below every floor is beginner", "deadlift_d5", 100, 50, LevelBeginner},
		{"unknown family", "lat_pulldown", 80, 100, LevelNA},
		{"zero bodyweight", "squat", 0, 100, LevelNA},
		{"zero one rep max", "squat", 80, 0, LevelNA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrengthLevel(tt.exerciseID, tt.bodyweight, tt.oneRM))
		})
	}
}

func TestPersonalRecordsAsymmetry(t *testing.T) {
	// 1RM comes from the first set only; max weight from any set. A heavy
	// final set must raise MaxWeight but not the 1RM estimate.
	history := []domain.WorkoutSession{
		{
			Exercises: []domain.SessionExercise{
				{
					ID: "bench_press",
					Sets: []domain.LoggedSet{
						{Weight: 80, Reps: 5},
						{Weight: 100, Reps: 1},
					},
				},
			},
		},
	}

	prs := PersonalRecords(history)
	pr, ok := prs["bench_press"]
	assert.True(t, ok)
	assert.InDelta(t, 80*(1+5.0/30), pr.OneRepMax, 1e-9)
	assert.Equal(t, 100.0, pr.MaxWeight)
}

func TestPersonalRecordsKeepsBestAcrossSessions(t *testing.T) {
	history := []domain.WorkoutSession{
		{Exercises: []domain.SessionExercise{{ID: "squat", Sets: []domain.LoggedSet{{Weight: 100, Reps: 5}}}}},
		{Exercises: []domain.SessionExercise{{ID: "squat", Sets: []domain.LoggedSet{{Weight: 90, Reps: 5}}}}},
	}
	prs := PersonalRecords(history)
	assert.InDelta(t, 100*(1+5.0/30), prs["squat"].OneRepMax, 1e-9)
	assert.Equal(t, 100.0, prs["squat"].MaxWeight)
}

func TestMuscleGroupVolumeWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	history := []domain.WorkoutSession{
		{
			Date: now.AddDate(0, 0, -2),
			Exercises: []domain.SessionExercise{
				{ID: "bench_press", MuscleGroup: "Chest", Sets: []domain.LoggedSet{{Weight: 60, Reps: 10}}},
				{ID: "tricep_pushdown", MuscleGroup: "Triceps", Sets: []domain.LoggedSet{{Weight: 20, Reps: 10}}},
			},
		},
		{
			// Outside the 7 day window; must be ignored.
			Date: now.AddDate(0, 0, -20),
			Exercises: []domain.SessionExercise{
				{ID: "bench_press", MuscleGroup: "Chest", Sets: []domain.LoggedSet{{Weight: 100, Reps: 10}}},
			},
		},
	}

	volumes := MuscleGroupVolume(history, 7, now)
	assert.Equal(t, 600.0, volumes["Chest"])
	assert.Equal(t, 200.0, volumes["Triceps"])
	assert.Len(t, volumes, 2)
}
