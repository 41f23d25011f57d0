package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

// InstanceService материализует шаблон в исполняемый чеклист
// и отслеживает завершение шагов
type InstanceService interface {
	Start(ctx context.Context, identity domain.Identity, templateID string) (*domain.ChecklistInstance, error)
	Get(ctx context.Context, identity domain.Identity, instanceID string) (*domain.ChecklistInstance, []*domain.InstanceStep, domain.InstanceProgress, error)
	List(ctx context.Context, identity domain.Identity) ([]*domain.InstanceWithProgress, error)
	// SetStepCompletion адресует шаг по id шага шаблона, не по id строки экземпляра
	SetStepCompletion(ctx context.Context, identity domain.Identity, instanceID, stepID string, isCompleted bool) (*domain.InstanceStep, error)
	Complete(ctx context.Context, identity domain.Identity, instanceID string) (*domain.ChecklistInstance, error)
}
