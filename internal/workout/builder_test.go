package workout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymzen/gymlog-app/internal/domain"
)

func benchDay() domain.TemplateDay {
	return domain.TemplateDay{
		Day:  1,
		Name: "Chest & Triceps",
		Exercises: []domain.ExerciseSpec{
			{ID: "bench_press", Name: "Barbell Bench Press", Sets: 3, Reps: 5, StartWeight: 20, Progression: 2.5, MuscleGroup: "Chest", Type: domain.TypeCompound},
		},
	}
}

func sessionOn(date time.Time, exercises ...domain.SessionExercise) domain.WorkoutSession {
	return domain.WorkoutSession{Day: 1, Name: "Chest & Triceps", Date: date, Exercises: exercises}
}

func TestBuildSessionNoHistory(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	session := BuildSession(benchDay(), nil, now)

	require.Len(t, session.Exercises, 1)
	ex := session.Exercises[0]
	assert.Equal(t, "bench_press", ex.ID)
	require.Len(t, ex.Sets, 3)
	for _, s := range ex.Sets {
		assert.Equal(t, 20.0, s.Weight)
		assert.Equal(t, 5, s.Reps)
		assert.Equal(t, 20.0, s.PrevWeight)
		assert.False(t, s.Completed)
	}
}

func TestBuildSessionProgressionWhenAllSetsMet(t *testing.T) {
	now := time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)
	prior := sessionOn(now.AddDate(0, 0, -2), domain.SessionExercise{
		ID: "bench_press",
		Sets: []domain.LoggedSet{
			{Weight: 40, Reps: 5, Completed: true},
			{Weight: 40, Reps: 5, Completed: true},
			{Weight: 40, Reps: 6, Completed: true},
		},
	})

	session := BuildSession(benchDay(), []domain.WorkoutSession{prior}, now)
	for _, s := range session.Exercises[0].Sets {
		assert.Equal(t, 42.5, s.Weight)
		assert.Equal(t, 40.0, s.PrevWeight)
		assert.Equal(t, 5, s.Reps)
	}
}

func TestBuildSessionRepeatsWeightAfterFailedSet(t *testing.T) {
	now := time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)
	prior := sessionOn(now.AddDate(0, 0, -2), domain.SessionExercise{
		ID: "bench_press",
		Sets: []domain.LoggedSet{
			{Weight: 40, Reps: 5},
			{Weight: 40, Reps: 4}, // missed target
			{Weight: 40, Reps: 5},
		},
	})

	session := BuildSession(benchDay(), []domain.WorkoutSession{prior}, now)
	for _, s := range session.Exercises[0].Sets {
		assert.Equal(t, 40.0, s.Weight)
	}
}

func TestBuildSessionUsesMostRecentMatch(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	older := sessionOn(now.AddDate(0, 0, -9), domain.SessionExercise{
		ID:   "bench_press",
		Sets: []domain.LoggedSet{{Weight: 30, Reps: 5}, {Weight: 30, Reps: 5}, {Weight: 30, Reps: 5}},
	})
	newer := sessionOn(now.AddDate(0, 0, -2), domain.SessionExercise{
		ID:   "bench_press",
		Sets: []domain.LoggedSet{{Weight: 40, Reps: 3}, {Weight: 40, Reps: 3}, {Weight: 40, Reps: 3}},
	})

	// Ascending order on purpose; the builder must sort for itself.
	session := BuildSession(benchDay(), []domain.WorkoutSession{older, newer}, now)
	for _, s := range session.Exercises[0].Sets {
		assert.Equal(t, 40.0, s.Weight, "weight must come from the newer, failed session without progression")
	}
}

func TestBuildSessionFallsBackToFinalSetWeight(t *testing.T) {
	now := time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)
	// Previous session had only two sets; the third slot takes the final
	// set's weight.
	prior := sessionOn(now.AddDate(0, 0, -2), domain.SessionExercise{
		ID: "bench_press",
		Sets: []domain.LoggedSet{
			{Weight: 40, Reps: 3},
			{Weight: 35, Reps: 3},
		},
	})

	session := BuildSession(benchDay(), []domain.WorkoutSession{prior}, now)
	sets := session.Exercises[0].Sets
	require.Len(t, sets, 3)
	assert.Equal(t, 40.0, sets[0].Weight)
	assert.Equal(t, 35.0, sets[1].Weight)
	assert.Equal(t, 35.0, sets[2].Weight)
}

func TestBuildSessionSyncWithSharesHistory(t *testing.T) {
	now := time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)
	day := domain.TemplateDay{
		Day:  5,
		Name: "Full Body Progression",
		Exercises: []domain.ExerciseSpec{
			{ID: "squat_d5", Name: "Barbell Squat", Sets: 3, Reps: 5, StartWeight: 50, Progression: 2.5, SyncWith: "squat"},
		},
	}
	prior := sessionOn(now.AddDate(0, 0, -2), domain.SessionExercise{
		ID:   "squat",
		Sets: []domain.LoggedSet{{Weight: 60, Reps: 6}, {Weight: 60, Reps: 6}, {Weight: 60, Reps: 6}},
	})

	session := BuildSession(day, []domain.WorkoutSession{prior}, now)
	for _, s := range session.Exercises[0].Sets {
		assert.Equal(t, 62.5, s.Weight, "squat history drives squat_d5 progression")
	}
}

func TestBuildSessionEndToEndProgressionCycle(t *testing.T) {
	now := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

	// First session from a cold start: 3x5 @ 20.
	first := BuildSession(benchDay(), nil, now)
	for i := range first.Exercises[0].Sets {
		first.Exercises[0].Sets[i].Completed = true
	}
	first.Date = now

	// User completed all sets unchanged; the next build adds 2.5 per slot.
	second := BuildSession(benchDay(), []domain.WorkoutSession{first}, now.AddDate(0, 0, 2))
	require.Len(t, second.Exercises[0].Sets, 3)
	for _, s := range second.Exercises[0].Sets {
		assert.Equal(t, 22.5, s.Weight)
		assert.Equal(t, 5, s.Reps)
		assert.False(t, s.Completed)
	}
}
