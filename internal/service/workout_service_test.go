package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
	"gymzen/gymlog-app/internal/repository"
)

type fakeWorkoutRepo struct {
	sessions  []domain.WorkoutSession
	createErr error
}

func (f *fakeWorkoutRepo) Create(_ context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	id := primitive.NewObjectID()
	stored := *session
	stored.ID = id
	f.sessions = append(f.sessions, stored)
	return id, nil
}

func (f *fakeWorkoutRepo) GetByUserID(_ context.Context, userID string) ([]domain.WorkoutSession, error) {
	var out []domain.WorkoutSession
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeWorkoutRepo) Update(_ context.Context, id primitive.ObjectID, userID string, exercises []domain.SessionExercise, date, loggedAt time.Time) error {
	for i := range f.sessions {
		if f.sessions[i].ID == id && f.sessions[i].UserID == userID {
			f.sessions[i].Exercises = exercises
			f.sessions[i].Date = date
			f.sessions[i].LoggedAt = loggedAt
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func (f *fakeProfileRepo) Get(_ context.Context, userID string) (*domain.Profile, error) {
	if p, ok := f.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProfileRepo) Save(_ context.Context, profile *domain.Profile) error {
	if f.profiles == nil {
		f.profiles = make(map[string]*domain.Profile)
	}
	copied := *profile
	f.profiles[profile.UserID] = &copied
	return nil
}

func newTestWorkoutService(workoutRepo *fakeWorkoutRepo) WorkoutService {
	return NewWorkoutService(workoutRepo, &fakeProfileRepo{}, NewTemplateService(&fakeTemplateRepo{}))
}

func TestStartSessionSeedsFromDefaultTemplate(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})

	view, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	require.NotNil(t, view.Session)

	day := program.DefaultTemplate().Days[0]
	require.Len(t, view.Session.Exercises, len(day.Exercises))
	first := view.Session.Exercises[0]
	assert.Equal(t, day.Exercises[0].ID, first.ID)
	assert.Len(t, first.Sets, day.Exercises[0].Sets)
	assert.Equal(t, day.Exercises[0].StartWeight, first.Sets[0].Weight)
	assert.False(t, view.Timer.Active)
}

func TestStartSessionUnknownDay(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})

	_, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 99)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestEditorOpsRequireActiveSession(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})

	_, err := svc.ToggleSet("u1", 0, 0)
	assert.ErrorIs(t, err, ErrNoActiveSession)
	_, err = svc.ActiveSession("u1")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestToggleSetStartsRestTimer(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})

	_, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)

	view, err := svc.ToggleSet("u1", 0, 0)
	require.NoError(t, err)
	assert.True(t, view.Session.Exercises[0].Sets[0].Completed)
	assert.True(t, view.Timer.Active)
	assert.Equal(t, 0, view.Timer.ExerciseIndex)
	assert.Equal(t, 0, view.Timer.SetIndex)

	// Un-completing the same set cancels its countdown.
	view, err = svc.ToggleSet("u1", 0, 0)
	require.NoError(t, err)
	assert.False(t, view.Session.Exercises[0].Sets[0].Completed)
	assert.False(t, view.Timer.Active)
}

func TestFinishSessionPersistsAndClearsActive(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(workoutRepo)

	_, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	_, err = svc.ToggleSet("u1", 0, 0)
	require.NoError(t, err)

	before := time.Now().UTC()
	session, err := svc.FinishSession(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, session.ID.IsZero())
	assert.False(t, session.LoggedAt.Before(before))

	require.Len(t, workoutRepo.sessions, 1)
	_, err = svc.ActiveSession("u1")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestFinishSessionFailureKeepsActiveSession(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{createErr: errors.New("write failed")}
	svc := newTestWorkoutService(workoutRepo)

	_, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	_, err = svc.SetWeight("u1", 0, 0, "42.5")
	require.NoError(t, err)
	beforeView, err := svc.ActiveSession("u1")
	require.NoError(t, err)
	wantExercises := beforeView.Session.Exercises

	_, err = svc.FinishSession(context.Background(), "u1")
	require.Error(t, err)

	// The in-progress session must survive the failed write untouched.
	afterView, err := svc.ActiveSession("u1")
	require.NoError(t, err)
	assert.Equal(t, wantExercises, afterView.Session.Exercises)
	assert.Equal(t, 42.5, afterView.Session.Exercises[0].Sets[0].Weight)
}

func TestProgressionAcrossSessions(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(workoutRepo)

	// First session: complete every set at target reps, then finish.
	view, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	spec := program.DefaultTemplate().Days[0].Exercises[0]
	firstWeight := view.Session.Exercises[0].Sets[0].Weight

	for ex := range view.Session.Exercises {
		_, err = svc.ToggleSelectAll("u1", ex)
		require.NoError(t, err)
	}
	_, err = svc.FinishSession(context.Background(), "u1")
	require.NoError(t, err)

	// Second session: the first lift moved up by its increment.
	view, err = svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	assert.Equal(t, firstWeight+spec.Progression, view.Session.Exercises[0].Sets[0].Weight)
	assert.Equal(t, firstWeight, view.Session.Exercises[0].Sets[0].PrevWeight)
}

func TestDiscardSession(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})

	_, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	require.NoError(t, svc.DiscardSession("u1"))

	_, err = svc.ActiveSession("u1")
	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.ErrorIs(t, svc.DiscardSession("u1"), ErrNoActiveSession)
}

func TestUpdateWorkoutRederivesLoggedAt(t *testing.T) {
	workoutRepo := &fakeWorkoutRepo{}
	svc := newTestWorkoutService(workoutRepo)

	_, err := svc.StartSession(context.Background(), "u1", program.DefaultTemplateID, 1)
	require.NoError(t, err)
	session, err := svc.FinishSession(context.Background(), "u1")
	require.NoError(t, err)
	originalLoggedAt := session.LoggedAt

	edited := session.Exercises
	edited[0].Sets[0].Weight = 100
	newDate := session.Date.AddDate(0, 0, -1)

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, svc.UpdateWorkout(context.Background(), "u1", session.ID, edited, newDate))

	history, err := svc.GetHistory(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 100.0, history[0].Exercises[0].Sets[0].Weight)
	assert.Equal(t, newDate, history[0].Date)
	assert.True(t, history[0].LoggedAt.After(originalLoggedAt))
}

func TestUpdateWorkoutUnknownID(t *testing.T) {
	svc := newTestWorkoutService(&fakeWorkoutRepo{})

	err := svc.UpdateWorkout(context.Background(), "u1", primitive.NewObjectID(), []domain.SessionExercise{{ID: "squat"}}, time.Now())
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}
