package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
)

type instanceService struct {
	instanceRepo repository.InstanceRepository
	templateRepo repository.TemplateRepository
}

// NewInstanceService создает новый экземпляр InstanceService
func NewInstanceService(instanceRepo repository.InstanceRepository, templateRepo repository.TemplateRepository) InstanceService {
	return &instanceService{
		instanceRepo: instanceRepo,
		templateRepo: templateRepo,
	}
}

// Start создает экземпляр и по одному instance-шагу на каждый шаг шаблона.
// Шаблон должен принадлежать вызывающему: шаринг не дает права запуска,
// а чужой шаблон неотличим от несуществующего.
func (s *instanceService) Start(ctx context.Context, identity domain.Identity, templateID string) (*domain.ChecklistInstance, error) {
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

	templateSteps, err := s.templateRepo.GetSteps(ctx, templateID)
	if err != nil {
		return nil, err
	}

	instance := &domain.ChecklistInstance{
		TemplateID: templateID,
		UserID:     identity.UserID,
		Status:     domain.InstanceInProgress,
	}

	// шаблон без шагов допустим: экземпляр существует с нулем шагов
	steps := make([]*domain.InstanceStep, 0, len(templateSteps))
	for _, templateStep := range templateSteps {
		steps = append(steps, &domain.InstanceStep{
			StepID:      templateStep.ID,
			IsCompleted: false,
		})
	}

	if err := s.instanceRepo.Create(ctx, instance, steps); err != nil {
		return nil, err
	}

	return instance, nil
}

func (s *instanceService) Get(ctx context.Context, identity domain.Identity, instanceID string) (*domain.ChecklistInstance, []*domain.InstanceStep, domain.InstanceProgress, error) {
	instance, err := s.requireOwned(ctx, identity, instanceID)
	if err != nil {
		return nil, nil, domain.InstanceProgress{}, err
	}

	steps, err := s.instanceRepo.GetSteps(ctx, instanceID)
	if err != nil {
		return nil, nil, domain.InstanceProgress{}, err
	}

	return instance, steps, domain.ComputeProgress(steps), nil
}

func (s *instanceService) List(ctx context.Context, identity domain.Identity) ([]*domain.InstanceWithProgress, error) {
	instances, err := s.instanceRepo.ListByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.InstanceWithProgress, 0, len(instances))
	for _, instance := range instances {
		steps, err := s.instanceRepo.GetSteps(ctx, instance.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &domain.InstanceWithProgress{
			Instance: instance,
			Progress: domain.ComputeProgress(steps),
		})
	}

	return result, nil
}

// SetStepCompletion идемпотентен по значению; completed_at перезаписывается
// на каждую запись true, включая повторную
func (s *instanceService) SetStepCompletion(ctx context.Context, identity domain.Identity, instanceID, stepID string, isCompleted bool) (*domain.InstanceStep, error) {
	if _, err := s.requireOwned(ctx, identity, instanceID); err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if isCompleted {
		now := time.Now()
		completedAt = &now
	}

	step, err := s.instanceRepo.SetStepCompletion(ctx, instanceID, stepID, isCompleted, completedAt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("step")
		}
		return nil, err
	}

	return step, nil
}

// Complete переводит экземпляр в completed без проверки прогресса:
// момент завершения выбирает вызывающий, не движок.
// Повторный вызов обновляет completed_at временем вызова.
func (s *instanceService) Complete(ctx context.Context, identity domain.Identity, instanceID string) (*domain.ChecklistInstance, error) {
	if _, err := s.requireOwned(ctx, identity, instanceID); err != nil {
		return nil, err
	}

	instance, err := s.instanceRepo.Complete(ctx, instanceID, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("checklist instance")
		}
		return nil, err
	}

	return instance, nil
}

func (s *instanceService) requireOwned(ctx context.Context, identity domain.Identity, instanceID string) (*domain.ChecklistInstance, error) {
	instance, err := s.instanceRepo.GetByID(ctx, instanceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("checklist instance")
		}
		return nil, err
	}
	if instance.UserID != identity.UserID {
		return nil, domain.NewNotFoundError("checklist instance")
	}
	return instance, nil
}
