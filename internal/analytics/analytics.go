// Package analytics holds the pure numeric computations derived from logged
// workout history: estimated one-rep-max, training volume, strength-level
// classification, personal records, and per-muscle-group volume.
package analytics

import (
	"strings"
	"time"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
)

// Strength level labels, best first.
const (
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelNovice       = "Novice"
	LevelBeginner     = "Beginner"
	LevelNA           = "N/A"
)

// OneRepMax estimates a one-rep-max using the Epley formula:
// weight * (1 + reps/30). A single rep is already a max; zero reps carries no
// information and yields 0. Negative or zero weight propagates arithmetically.
func OneRepMax(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	if reps == 0 {
		return 0
	}
	return weight * (1 + float64(reps)/30)
}

// SetVolume sums weight*reps over the given sets.
func SetVolume(sets []domain.LoggedSet) float64 {
	var total float64
	for _, s := range sets {
		total += s.Weight * float64(s.Reps)
	}
	return total
}

// liftFamily derives the threshold-table key from an exercise id: the token
// before the first underscore, upper-cased ("bench_press" -> "BENCH").
// The convention is fragile but load-bearing; keep it behind this one
// function so it can be replaced with an explicit mapping later.
func liftFamily(exerciseID string) string {
	head, _, _ := strings.Cut(exerciseID, "_")
	return strings.ToUpper(head)
}

// StrengthLevel classifies a lift by the ratio of estimated 1RM to
// bodyweight against the configured per-family thresholds. Returns "N/A"
// when bodyweight or 1RM is zero, or when the lift family has no thresholds.
// Beginner is the floor: always returned when no higher tier matches.
func StrengthLevel(exerciseID string, bodyweight, oneRepMax float64) string {
	if bodyweight == 0 || oneRepMax == 0 {
		return LevelNA
	}
	levels, ok := program.StrengthLevels[liftFamily(exerciseID)]
	if !ok {
		return LevelNA
	}
	ratio := oneRepMax / bodyweight
	switch {
	case ratio >= levels.Advanced:
		return LevelAdvanced
	case ratio >= levels.Intermediate:
		return LevelIntermediate
	case ratio >= levels.Novice:
		return LevelNovice
	default:
		return LevelBeginner
	}
}

// PersonalRecord holds the best observed numbers for one exercise id.
type PersonalRecord struct {
	OneRepMax float64 `json:"oneRM"`
	MaxWeight float64 `json:"maxWeight"`
}

// PersonalRecords scans the whole history and keeps, per exercise id, the
// best 1RM estimate and the heaviest raw weight. The 1RM component is
// computed from the first set of each logged exercise only, while max weight
// considers every set. The asymmetry is long-standing historical behavior:
// changing it would rewrite users' recorded PRs, so it is preserved.
func PersonalRecords(history []domain.WorkoutSession) map[string]PersonalRecord {
	prs := make(map[string]PersonalRecord)
	for _, session := range history {
		for _, ex := range session.Exercises {
			var oneRM float64
			if len(ex.Sets) > 0 {
				oneRM = OneRepMax(ex.Sets[0].Weight, ex.Sets[0].Reps)
			}
			var maxWeight float64
			for _, s := range ex.Sets {
				if s.Weight > maxWeight {
					maxWeight = s.Weight
				}
			}

			pr, seen := prs[ex.ID]
			if !seen || oneRM > pr.OneRepMax {
				pr.OneRepMax = oneRM
			}
			if !seen || maxWeight > pr.MaxWeight {
				pr.MaxWeight = maxWeight
			}
			prs[ex.ID] = pr
		}
	}
	return prs
}

// MuscleGroupVolume sums per-muscle-group volume over the sessions whose
// date falls within windowDays of now.
func MuscleGroupVolume(history []domain.WorkoutSession, windowDays int, now time.Time) map[string]float64 {
	cutoff := now.AddDate(0, 0, -windowDays)
	volumes := make(map[string]float64)
	for _, session := range history {
		if session.Date.Before(cutoff) {
			continue
		}
		for _, ex := range session.Exercises {
			volumes[ex.MuscleGroup] += SetVolume(ex.Sets)
		}
	}
	return volumes
}
