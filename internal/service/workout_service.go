package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/repository"
	"gymzen/gymlog-app/internal/workout"
)

var (
	ErrNoActiveSession = errors.New("no workout session in progress")
	ErrEmptyDay        = errors.New("template day has no exercises")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// ActiveSessionView is the snapshot handed to the API layer: the in-progress
// session plus the current rest timer state.
type ActiveSessionView struct {
	Session *domain.WorkoutSession `json:"session"`
	Timer   workout.TimerState     `json:"timer"`
}

// WorkoutService owns the full session lifecycle: building an in-progress
// session from a template day, live-editing it, running the rest timer, and
// finalizing it into immutable history.
type WorkoutService interface {
	StartSession(ctx context.Context, userID, templateID string, day int) (*ActiveSessionView, error)
	ActiveSession(userID string) (*ActiveSessionView, error)
	SetWeight(userID string, exerciseIdx, setIdx int, raw string) (*ActiveSessionView, error)
	SetReps(userID string, exerciseIdx, setIdx int, raw string) (*ActiveSessionView, error)
	ToggleSet(userID string, exerciseIdx, setIdx int) (*ActiveSessionView, error)
	ToggleSelectAll(userID string, exerciseIdx int) (*ActiveSessionView, error)
	AddSet(userID string, exerciseIdx int) (*ActiveSessionView, error)
	RemoveSet(userID string, exerciseIdx, setIdx int) (*ActiveSessionView, error)
	SetDate(userID string, date time.Time) (*ActiveSessionView, error)
	SkipTimer(userID string) (*ActiveSessionView, error)
	ExtendTimer(userID string, seconds int) (*ActiveSessionView, error)
	DiscardSession(userID string) error
	FinishSession(ctx context.Context, userID string) (*domain.WorkoutSession, error)
	GetHistory(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
	UpdateWorkout(ctx context.Context, userID string, id primitive.ObjectID, exercises []domain.SessionExercise, date time.Time) error
}

// activeSession is the per-user in-progress state. The editor is not safe for
// concurrent use, so every access goes through the service mutex.
type activeSession struct {
	editor      *workout.Editor
	timer       *workout.RestTimer
	restSeconds int
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
	profileRepo repository.ProfileRepository
	templates   TemplateService

	mu     sync.Mutex
	active map[string]*activeSession
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, profileRepo repository.ProfileRepository, templates TemplateService) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		profileRepo: profileRepo,
		templates:   templates,
		active:      make(map[string]*activeSession),
	}
}

// StartSession builds a fresh session for the given template day, seeded from
// the user's history. Any session already in progress is discarded.
func (s *workoutService) StartSession(ctx context.Context, userID, templateID string, day int) (*ActiveSessionView, error) {
	template, err := s.templates.GetTemplate(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}

	var templateDay *domain.TemplateDay
	for i := range template.Days {
		if template.Days[i].Day == day {
			templateDay = &template.Days[i]
			break
		}
	}
	if templateDay == nil {
		return nil, ErrTemplateNotFound
	}
	if len(templateDay.Exercises) == 0 {
		return nil, ErrEmptyDay
	}

	history, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	session := workout.BuildSession(*templateDay, history, time.Now().UTC())
	session.UserID = userID

	restSeconds := workout.DefaultRestSeconds
	if profile, err := s.profileRepo.Get(ctx, userID); err == nil && profile.RestTimerSeconds > 0 {
		restSeconds = profile.RestTimerSeconds
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.active[userID]; ok {
		prev.timer.Close()
	}
	s.active[userID] = &activeSession{
		editor:      workout.NewEditor(&session, templateDay.Exercises),
		timer:       workout.NewRestTimer(),
		restSeconds: restSeconds,
	}
	return s.viewLocked(userID)
}

func (s *workoutService) viewLocked(userID string) (*ActiveSessionView, error) {
	active, ok := s.active[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return &ActiveSessionView{
		Session: active.editor.Session(),
		Timer:   active.timer.State(),
	}, nil
}

// ActiveSession returns the current in-progress session, if any.
func (s *workoutService) ActiveSession(userID string) (*ActiveSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(userID)
}

// edit runs an editor operation under the service lock and returns the
// updated view.
func (s *workoutService) edit(userID string, op func(*activeSession) error) (*ActiveSessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	active, ok := s.active[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	if err := op(active); err != nil {
		return nil, err
	}
	return s.viewLocked(userID)
}

func (s *workoutService) SetWeight(userID string, exerciseIdx, setIdx int, raw string) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		return a.editor.SetWeight(exerciseIdx, setIdx, raw)
	})
}

func (s *workoutService) SetReps(userID string, exerciseIdx, setIdx int, raw string) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		return a.editor.SetReps(exerciseIdx, setIdx, raw)
	})
}

func (s *workoutService) ToggleSet(userID string, exerciseIdx, setIdx int) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		ev, err := a.editor.ToggleSet(exerciseIdx, setIdx)
		if err != nil {
			return err
		}
		a.timer.Apply(ev, a.restSeconds)
		return nil
	})
}

func (s *workoutService) ToggleSelectAll(userID string, exerciseIdx int) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		ev, err := a.editor.ToggleSelectAll(exerciseIdx)
		if err != nil {
			return err
		}
		a.timer.Apply(ev, a.restSeconds)
		return nil
	})
}

func (s *workoutService) AddSet(userID string, exerciseIdx int) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		return a.editor.AddSet(exerciseIdx)
	})
}

func (s *workoutService) RemoveSet(userID string, exerciseIdx, setIdx int) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		return a.editor.RemoveSet(exerciseIdx, setIdx)
	})
}

func (s *workoutService) SetDate(userID string, date time.Time) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		return a.editor.SetDate(date, time.Now())
	})
}

func (s *workoutService) SkipTimer(userID string) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		a.timer.Skip()
		return nil
	})
}

func (s *workoutService) ExtendTimer(userID string, seconds int) (*ActiveSessionView, error) {
	return s.edit(userID, func(a *activeSession) error {
		a.timer.Extend(seconds)
		return nil
	})
}

// DiscardSession abandons the in-progress session without persisting it.
func (s *workoutService) DiscardSession(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	active, ok := s.active[userID]
	if !ok {
		return ErrNoActiveSession
	}
	active.timer.Close()
	delete(s.active, userID)
	return nil
}

// FinishSession stamps the finalization time and persists the session as
// history. If the write fails the in-progress session is left untouched so
// the user can retry without losing logged sets.
func (s *workoutService) FinishSession(ctx context.Context, userID string) (*domain.WorkoutSession, error) {
	s.mu.Lock()
	active, ok := s.active[userID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	session := active.editor.Session()
	s.mu.Unlock()

	session.LoggedAt = time.Now().UTC()

	id, err := s.workoutRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = id

	s.mu.Lock()
	if current, ok := s.active[userID]; ok && current == active {
		current.timer.Close()
		delete(s.active, userID)
	}
	s.mu.Unlock()

	return session, nil
}

// GetHistory returns the user's persisted sessions, newest first.
func (s *workoutService) GetHistory(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}

// UpdateWorkout overwrites a persisted session's exercises and logical date.
// Edits count as a fresh finalization, so the logged-at timestamp is
// re-derived.
func (s *workoutService) UpdateWorkout(ctx context.Context, userID string, id primitive.ObjectID, exercises []domain.SessionExercise, date time.Time) error {
	if len(exercises) == 0 {
		return errors.New("workout must keep at least one exercise")
	}
	err := s.workoutRepo.Update(ctx, id, userID, exercises, date, time.Now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}
