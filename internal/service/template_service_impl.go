package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
)

type templateService struct {
	templateRepo repository.TemplateRepository
	sharingRepo  repository.SharingRepository
}

// NewTemplateService создает новый экземпляр TemplateService
func NewTemplateService(templateRepo repository.TemplateRepository, sharingRepo repository.SharingRepository) TemplateService {
	return &templateService{
		templateRepo: templateRepo,
		sharingRepo:  sharingRepo,
	}
}

// validateTemplateInput проверяет заголовок и шаги, возвращая очищенные шаги
func validateTemplateInput(title string, steps []string) ([]string, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if len(steps) == 0 {
		return nil, domain.NewValidationError("at least one step is required")
	}

	trimmed := make([]string, 0, len(steps))
	for i, step := range steps {
		text := strings.TrimSpace(step)
		if text == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("step %d text is required", i+1))
		}
		trimmed = append(trimmed, text)
	}
	return trimmed, nil
}

func buildSteps(texts []string) []*domain.ChecklistStep {
	steps := make([]*domain.ChecklistStep, 0, len(texts))
	for i, text := range texts {
		steps = append(steps, &domain.ChecklistStep{StepText: text, OrderIndex: i})
	}
	return steps
}

func (s *templateService) Create(ctx context.Context, identity domain.Identity, title string, steps []string) (*domain.ChecklistTemplate, []*domain.ChecklistStep, error) {
	texts, err := validateTemplateInput(title, steps)
	if err != nil {
		return nil, nil, err
	}

	template := &domain.ChecklistTemplate{
		UserID: identity.UserID,
		Title:  strings.TrimSpace(title),
	}
	templateSteps := buildSteps(texts)

	if err := s.templateRepo.Create(ctx, template, templateSteps); err != nil {
		return nil, nil, err
	}

	return template, templateSteps, nil
}

func (s *templateService) Get(ctx context.Context, identity domain.Identity, templateID string) (*domain.ChecklistTemplate, []*domain.ChecklistStep, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.NewNotFoundError("template")
		}
		return nil, nil, err
	}

	// чужой шаблон виден только через активный шаринг;
	// отсутствие доступа неотличимо от отсутствия шаблона
	visible, err := canViewTemplate(ctx, s.sharingRepo, template, identity.UserID)
	if err != nil {
		return nil, nil, err
	}
	if !visible {
		return nil, nil, domain.NewNotFoundError("template")
	}

	steps, err := s.templateRepo.GetSteps(ctx, templateID)
	if err != nil {
		return nil, nil, err
	}

	return template, steps, nil
}

func (s *templateService) List(ctx context.Context, identity domain.Identity) ([]*domain.ChecklistTemplate, error) {
	return s.templateRepo.ListByUserID(ctx, identity.UserID)
}

func (s *templateService) Update(ctx context.Context, identity domain.Identity, templateID, title string, steps []string) (*domain.ChecklistTemplate, []*domain.ChecklistStep, error) {
	texts, err := validateTemplateInput(title, steps)
	if err != nil {
		return nil, nil, err
	}

	template, err := s.requireOwned(ctx, identity, templateID)
	if err != nil {
		return nil, nil, err
	}

	template.Title = strings.TrimSpace(title)
	templateSteps := buildSteps(texts)
	for _, step := range templateSteps {
		step.TemplateID = templateID
	}

	if err := s.templateRepo.Update(ctx, template, templateSteps); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.NewNotFoundError("template")
		}
		return nil, nil, err
	}

	return template, templateSteps, nil
}

func (s *templateService) Delete(ctx context.Context, identity domain.Identity, templateID string) error {
	if _, err := s.requireOwned(ctx, identity, templateID); err != nil {
		return err
	}

	// экземпляры, шаринги, избранное и отзывы удаляются каскадом хранилища
	if err := s.templateRepo.Delete(ctx, templateID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("template")
		}
		return err
	}

	return nil
}

// requireOwned возвращает NotFound и для чужого шаблона: существование скрыто
func (s *templateService) requireOwned(ctx context.Context, identity domain.Identity, templateID string) (*domain.ChecklistTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("template")
		}
		return nil, err
	}
	if template.UserID != identity.UserID {
		return nil, domain.NewNotFoundError("template")
	}
	return template, nil
}
