package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
	"gymzen/gymlog-app/internal/repository"
)

// fakeTemplateRepo records calls so tests can assert a rejection happened
// before storage was touched.
type fakeTemplateRepo struct {
	templates []domain.Template
	calls     []string
}

func (f *fakeTemplateRepo) Create(_ context.Context, template *domain.Template) (string, error) {
	f.calls = append(f.calls, "create")
	template.ID = "t1"
	f.templates = append(f.templates, *template)
	return template.ID, nil
}

func (f *fakeTemplateRepo) Update(_ context.Context, template *domain.Template) error {
	f.calls = append(f.calls, "update")
	for i := range f.templates {
		if f.templates[i].ID == template.ID && f.templates[i].UserID == template.UserID {
			f.templates[i] = *template
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTemplateRepo) GetByUserID(_ context.Context, userID string) ([]domain.Template, error) {
	f.calls = append(f.calls, "get")
	var out []domain.Template
	for _, t := range f.templates {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id, userID string) error {
	f.calls = append(f.calls, "delete")
	for i := range f.templates {
		if f.templates[i].ID == id && f.templates[i].UserID == userID {
			f.templates = append(f.templates[:i], f.templates[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func validDays() []domain.TemplateDay {
	return []domain.TemplateDay{
		{
			Day:  1,
			Name: "Push",
			Exercises: []domain.ExerciseSpec{
				{ID: "bench_press", Name: "Bench Press", Sets: 3, Reps: 5, StartWeight: 40, Progression: 2.5, Type: domain.TypeCompound, MuscleGroup: "Chest"},
			},
		},
	}
}

func TestGetTemplatesListsDefaultFirst(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewTemplateService(repo)

	_, err := svc.CreateTemplate(context.Background(), "u1", "My Plan", validDays())
	require.NoError(t, err)

	templates, err := svc.GetTemplates(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, program.DefaultTemplateID, templates[0].ID)
	assert.True(t, templates[0].IsDefault)
	assert.Equal(t, "My Plan", templates[1].Name)
}

func TestDeleteDefaultTemplateRejectedBeforeStorage(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewTemplateService(repo)

	err := svc.DeleteTemplate(context.Background(), "u1", program.DefaultTemplateID)
	assert.ErrorIs(t, err, ErrDefaultTemplate)
	assert.Empty(t, repo.calls, "storage must not be touched for the default template")
}

func TestUpdateDefaultTemplateRejected(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewTemplateService(repo)

	err := svc.UpdateTemplate(context.Background(), "u1", program.DefaultTemplateID, "Renamed", validDays())
	assert.ErrorIs(t, err, ErrDefaultTemplate)
	assert.Empty(t, repo.calls)
}

func TestCreateTemplateValidation(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewTemplateService(repo)

	_, err := svc.CreateTemplate(context.Background(), "u1", "", validDays())
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = svc.CreateTemplate(context.Background(), "u1", "Plan", nil)
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	days := validDays()
	days[0].Exercises = nil
	_, err = svc.CreateTemplate(context.Background(), "u1", "Plan", days)
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	days = validDays()
	days[0].Exercises[0].Name = ""
	_, err = svc.CreateTemplate(context.Background(), "u1", "Plan", days)
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	assert.Empty(t, repo.calls, "invalid templates must never reach storage")
}

func TestGetTemplateResolvesDefaultAndCustom(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewTemplateService(repo)

	created, err := svc.CreateTemplate(context.Background(), "u1", "My Plan", validDays())
	require.NoError(t, err)

	def, err := svc.GetTemplate(context.Background(), "u1", program.DefaultTemplateID)
	require.NoError(t, err)
	assert.True(t, def.IsDefault)

	custom, err := svc.GetTemplate(context.Background(), "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "My Plan", custom.Name)

	_, err = svc.GetTemplate(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = svc.GetTemplate(context.Background(), "other-user", created.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDeleteCustomTemplate(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := NewTemplateService(repo)

	created, err := svc.CreateTemplate(context.Background(), "u1", "My Plan", validDays())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(context.Background(), "u1", created.ID))

	templates, err := svc.GetTemplates(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, templates, 1) // only the default remains
}
