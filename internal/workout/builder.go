// Package workout implements the session progression engine: building a new
// session from a template day and prior history, live-editing it, and the
// rest timer driven by set completion.
package workout

import (
	"sort"
	"time"

	"gymzen/gymlog-app/internal/domain"
)

// matchesSpec reports whether a logged exercise counts as history for the
// given spec: same id, or the spec's syncWith id (two template entries
// sharing one logical lift).
func matchesSpec(ex domain.SessionExercise, spec domain.ExerciseSpec) bool {
	return ex.ID == spec.ID || (spec.SyncWith != "" && ex.ID == spec.SyncWith)
}

// lastMatching finds, in newest-first order, the most recent logged exercise
// matching the spec. history may arrive in any order; the builder sorts its
// own copy.
func lastMatching(history []domain.WorkoutSession, spec domain.ExerciseSpec) *domain.SessionExercise {
	sorted := make([]domain.WorkoutSession, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	for _, session := range sorted {
		for i := range session.Exercises {
			if matchesSpec(session.Exercises[i], spec) {
				return &session.Exercises[i]
			}
		}
	}
	return nil
}

// BuildSession produces a fresh in-progress session for a template day,
// seeding every set from the most recent matching history. Per set slot the
// previous weight comes from the same slot of the last matching exercise,
// falling back to its final set when the slot is out of range (the user
// removed sets since), and to the spec's start weight when there is no
// history at all. When every prior set met the target rep count the
// progression increment is added; a failed session simply repeats its
// weight. Reps are always seeded at the target, not the previously achieved
// count. Pure: no storage access, input ordering preserved.
func BuildSession(day domain.TemplateDay, history []domain.WorkoutSession, now time.Time) domain.WorkoutSession {
	session := domain.WorkoutSession{
		Day:       day.Day,
		Name:      day.Name,
		Date:      now,
		Exercises: make([]domain.SessionExercise, 0, len(day.Exercises)),
	}

	for _, spec := range day.Exercises {
		lastEx := lastMatching(history, spec)

		allMet := lastEx != nil
		if lastEx != nil {
			for _, s := range lastEx.Sets {
				if s.Reps < spec.Reps {
					allMet = false
					break
				}
			}
		}

		sets := make([]domain.LoggedSet, spec.Sets)
		for i := range sets {
			prevWeight := spec.StartWeight
			if lastEx != nil && len(lastEx.Sets) > 0 {
				if i < len(lastEx.Sets) {
					prevWeight = lastEx.Sets[i].Weight
				} else {
					prevWeight = lastEx.Sets[len(lastEx.Sets)-1].Weight
				}
			}

			weight := prevWeight
			if allMet {
				weight = prevWeight + spec.Progression
			}

			sets[i] = domain.LoggedSet{
				Weight:     weight,
				Reps:       spec.Reps,
				Completed:  false,
				PrevWeight: prevWeight,
			}
		}

		session.Exercises = append(session.Exercises, domain.SessionExercise{
			ID:          spec.ID,
			Name:        spec.Name,
			Type:        spec.Type,
			MuscleGroup: spec.MuscleGroup,
			Unit:        spec.Unit,
			Sets:        sets,
		})
	}

	return session
}
