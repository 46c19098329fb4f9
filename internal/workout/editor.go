package workout

import (
	"errors"
	"strconv"
	"time"

	"gymzen/gymlog-app/internal/domain"
)

var (
	ErrBadIndex   = errors.New("exercise or set index out of range")
	ErrFutureDate = errors.New("session date cannot be in the future")
)

// TimerEventKind tells the caller what to do with the rest timer after a
// state transition.
type TimerEventKind int

const (
	TimerNone TimerEventKind = iota
	TimerStart
	TimerStop
)

// TimerEvent is emitted by editor transitions instead of the editor touching
// a countdown directly, so the countdown mechanism can be swapped out (or
// absent, in tests) without changing editor logic. SetIndex -1 on a stop
// event means "any set of this exercise".
type TimerEvent struct {
	Kind          TimerEventKind
	ExerciseIndex int
	SetIndex      int
}

// Editor is the live-editing state machine over a single in-progress
// session. It is not safe for concurrent use; the owner serializes access.
type Editor struct {
	session *domain.WorkoutSession
	specs   []domain.ExerciseSpec // aligned with session.Exercises by index
}

// NewEditor wraps an in-progress session. specs are the template day's
// exercise specs in the same order the session was built with; they provide
// the defaults when a set is added to an emptied exercise.
func NewEditor(session *domain.WorkoutSession, specs []domain.ExerciseSpec) *Editor {
	return &Editor{session: session, specs: specs}
}

// Session exposes the underlying session for rendering and persistence.
func (e *Editor) Session() *domain.WorkoutSession {
	return e.session
}

func (e *Editor) set(exerciseIdx, setIdx int) (*domain.LoggedSet, error) {
	if exerciseIdx < 0 || exerciseIdx >= len(e.session.Exercises) {
		return nil, ErrBadIndex
	}
	sets := e.session.Exercises[exerciseIdx].Sets
	if setIdx < 0 || setIdx >= len(sets) {
		return nil, ErrBadIndex
	}
	return &sets[setIdx], nil
}

// SetWeight overwrites a set's weight from raw user input. Unparsable input
// (including the empty string mid-typing) coerces to 0; other fields are
// never affected.
func (e *Editor) SetWeight(exerciseIdx, setIdx int, raw string) error {
	s, err := e.set(exerciseIdx, setIdx)
	if err != nil {
		return err
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		w = 0
	}
	s.Weight = w
	return nil
}

// SetReps overwrites a set's rep count from raw user input, coercing
// unparsable input to 0.
func (e *Editor) SetReps(exerciseIdx, setIdx int, raw string) error {
	s, err := e.set(exerciseIdx, setIdx)
	if err != nil {
		return err
	}
	r, err := strconv.Atoi(raw)
	if err != nil {
		r = 0
	}
	s.Reps = r
	return nil
}

// ToggleSet flips a set's completion flag. Completing a set asks for a rest
// timer at that location; un-completing it asks for that location's timer to
// be cancelled.
func (e *Editor) ToggleSet(exerciseIdx, setIdx int) (TimerEvent, error) {
	s, err := e.set(exerciseIdx, setIdx)
	if err != nil {
		return TimerEvent{}, err
	}
	s.Completed = !s.Completed
	kind := TimerStop
	if s.Completed {
		kind = TimerStart
	}
	return TimerEvent{Kind: kind, ExerciseIndex: exerciseIdx, SetIndex: setIdx}, nil
}

// ToggleSelectAll marks every set of the exercise incomplete when all are
// complete, and complete otherwise. Transitioning to all-complete starts a
// rest timer keyed to the last set.
func (e *Editor) ToggleSelectAll(exerciseIdx int) (TimerEvent, error) {
	if exerciseIdx < 0 || exerciseIdx >= len(e.session.Exercises) {
		return TimerEvent{}, ErrBadIndex
	}
	ex := &e.session.Exercises[exerciseIdx]

	allCompleted := true
	for _, s := range ex.Sets {
		if !s.Completed {
			allCompleted = false
			break
		}
	}
	for i := range ex.Sets {
		ex.Sets[i].Completed = !allCompleted
	}

	if allCompleted {
		return TimerEvent{Kind: TimerStop, ExerciseIndex: exerciseIdx, SetIndex: -1}, nil
	}
	return TimerEvent{Kind: TimerStart, ExerciseIndex: exerciseIdx, SetIndex: len(ex.Sets) - 1}, nil
}

// AddSet appends a new incomplete set seeded from the exercise's last set,
// or from the spec's defaults if the exercise somehow has none.
func (e *Editor) AddSet(exerciseIdx int) error {
	if exerciseIdx < 0 || exerciseIdx >= len(e.session.Exercises) {
		return ErrBadIndex
	}
	ex := &e.session.Exercises[exerciseIdx]

	var newSet domain.LoggedSet
	if n := len(ex.Sets); n > 0 {
		last := ex.Sets[n-1]
		newSet = domain.LoggedSet{Weight: last.Weight, Reps: last.Reps, PrevWeight: last.PrevWeight}
	} else if exerciseIdx < len(e.specs) {
		spec := e.specs[exerciseIdx]
		newSet = domain.LoggedSet{Weight: spec.StartWeight, Reps: spec.Reps, PrevWeight: spec.StartWeight}
	}
	newSet.Completed = false
	ex.Sets = append(ex.Sets, newSet)
	return nil
}

// RemoveSet deletes a set. An exercise always keeps at least one set;
// removing the last remaining one is a no-op.
func (e *Editor) RemoveSet(exerciseIdx, setIdx int) error {
	if _, err := e.set(exerciseIdx, setIdx); err != nil {
		return err
	}
	ex := &e.session.Exercises[exerciseIdx]
	if len(ex.Sets) <= 1 {
		return nil
	}
	ex.Sets = append(ex.Sets[:setIdx], ex.Sets[setIdx+1:]...)
	return nil
}

// SetDate overwrites the session's logical date. Backdating is allowed;
// future dates are rejected (upper bound is the end of today).
func (e *Editor) SetDate(date, now time.Time) error {
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	if date.After(endOfToday) {
		return ErrFutureDate
	}
	e.session.Date = date
	return nil
}
