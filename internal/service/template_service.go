package service

import (
	"context"
	"errors"
	"fmt"

	"gymzen/gymlog-app/internal/domain"
	"gymzen/gymlog-app/internal/program"
	"gymzen/gymlog-app/internal/repository"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrDefaultTemplate  = errors.New("the default template cannot be modified or deleted")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// TemplateService manages training templates. The built-in default template
// is injected in memory and always listed first; it never hits storage.
type TemplateService interface {
	GetTemplates(ctx context.Context, userID string) ([]domain.Template, error)
	GetTemplate(ctx context.Context, userID, id string) (*domain.Template, error)
	CreateTemplate(ctx context.Context, userID, name string, days []domain.TemplateDay) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, userID, id, name string, days []domain.TemplateDay) error
	DeleteTemplate(ctx context.Context, userID, id string) error
}

type templateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService creates a new instance of templateService.
func NewTemplateService(templateRepo repository.TemplateRepository) TemplateService {
	return &templateService{templateRepo: templateRepo}
}

// GetTemplates returns the default template followed by the user's custom
// templates.
func (s *templateService) GetTemplates(ctx context.Context, userID string) ([]domain.Template, error) {
	custom, err := s.templateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	templates := make([]domain.Template, 0, len(custom)+1)
	templates = append(templates, program.DefaultTemplate())
	templates = append(templates, custom...)
	return templates, nil
}

// GetTemplate resolves one template by id, including the built-in default.
func (s *templateService) GetTemplate(ctx context.Context, userID, id string) (*domain.Template, error) {
	if id == program.DefaultTemplateID {
		template := program.DefaultTemplate()
		return &template, nil
	}
	custom, err := s.templateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range custom {
		if custom[i].ID == id {
			return &custom[i], nil
		}
	}
	return nil, ErrTemplateNotFound
}

// validateTemplate enforces the structural rules for custom templates: a
// name, at least one day, and every day named with at least one named
// exercise.
func validateTemplate(name string, days []domain.TemplateDay) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTemplate)
	}
	if len(days) == 0 {
		return fmt.Errorf("%w: at least one day is required", ErrInvalidTemplate)
	}
	for _, day := range days {
		if day.Name == "" {
			return fmt.Errorf("%w: day %d has no name", ErrInvalidTemplate, day.Day)
		}
		if len(day.Exercises) == 0 {
			return fmt.Errorf("%w: day %q has no exercises", ErrInvalidTemplate, day.Name)
		}
		for _, ex := range day.Exercises {
			if ex.ID == "" || ex.Name == "" {
				return fmt.Errorf("%w: day %q has an unnamed exercise", ErrInvalidTemplate, day.Name)
			}
		}
	}
	return nil
}

// CreateTemplate validates and persists a new custom template.
func (s *templateService) CreateTemplate(ctx context.Context, userID, name string, days []domain.TemplateDay) (*domain.Template, error) {
	if err := validateTemplate(name, days); err != nil {
		return nil, err
	}
	template := &domain.Template{
		UserID: userID,
		Name:   name,
		Days:   days,
	}
	id, err := s.templateRepo.Create(ctx, template)
	if err != nil {
		return nil, err
	}
	template.ID = id
	return template, nil
}

// UpdateTemplate validates and overwrites a custom template. The built-in
// default is rejected before storage is touched.
func (s *templateService) UpdateTemplate(ctx context.Context, userID, id, name string, days []domain.TemplateDay) error {
	if id == program.DefaultTemplateID {
		return ErrDefaultTemplate
	}
	if err := validateTemplate(name, days); err != nil {
		return err
	}
	err := s.templateRepo.Update(ctx, &domain.Template{
		ID:     id,
		UserID: userID,
		Name:   name,
		Days:   days,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}

// DeleteTemplate removes a custom template. The built-in default is rejected
// before storage is touched.
func (s *templateService) DeleteTemplate(ctx context.Context, userID, id string) error {
	if id == program.DefaultTemplateID {
		return ErrDefaultTemplate
	}
	err := s.templateRepo.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTemplateNotFound
	}
	return err
}
