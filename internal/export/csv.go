// Package export renders workout history into portable formats.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"gymzen/gymlog-app/internal/domain"
)

var csvHeader = []string{"Date", "Workout", "Exercise", "Set", "Weight", "Reps", "Volume"}

// WriteHistoryCSV writes one row per logged set, in the order the history is
// given (callers pass it newest first). Weights and volumes are emitted with
// the minimal decimal representation.
func WriteHistoryCSV(w io.Writer, history []domain.WorkoutSession) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, session := range history {
		date := session.Date.Format("2006-01-02")
		for _, exercise := range session.Exercises {
			for i, set := range exercise.Sets {
				row := []string{
					date,
					session.Name,
					exercise.Name,
					strconv.Itoa(i + 1),
					strconv.FormatFloat(set.Weight, 'f', -1, 64),
					strconv.Itoa(set.Reps),
					strconv.FormatFloat(set.Weight*float64(set.Reps), 'f', -1, 64),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
