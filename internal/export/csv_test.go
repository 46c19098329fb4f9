package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymzen/gymlog-app/internal/domain"
)

func TestWriteHistoryCSV(t *testing.T) {
	history := []domain.WorkoutSession{
		{
			Name: "Day 1 - Push",
			Date: time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
			Exercises: []domain.SessionExercise{
				{
					Name: "Bench Press",
					Sets: []domain.LoggedSet{
						{Weight: 60, Reps: 5},
						{Weight: 62.5, Reps: 3},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryCSV(&buf, history))

	want := "Date,Workout,Exercise,Set,Weight,Reps,Volume\n" +
		"2026-08-30,Day 1 - Push,Bench Press,1,60,5,300\n" +
		"2026-08-30,Day 1 - Push,Bench Press,2,62.5,3,187.5\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteHistoryCSVEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistoryCSV(&buf, nil))
	assert.Equal(t, "Date,Workout,Exercise,Set,Weight,Reps,Volume\n", buf.String())
}
