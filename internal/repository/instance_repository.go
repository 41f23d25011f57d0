package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type InstanceRepository interface {
	// Create создает экземпляр и его шаги одной транзакцией.
	// Пустой список шагов допустим: экземпляр без шагов существует.
	Create(ctx context.Context, instance *domain.ChecklistInstance, steps []*domain.InstanceStep) error
	GetByID(ctx context.Context, id string) (*domain.ChecklistInstance, error)
	// GetSteps возвращает шаги экземпляра в порядке order_index шаблона
	GetSteps(ctx context.Context, instanceID string) ([]*domain.InstanceStep, error)
	// ListByUserID возвращает экземпляры пользователя, новые сначала
	ListByUserID(ctx context.Context, userID string) ([]*domain.ChecklistInstance, error)
	// SetStepCompletion ищет шаг по паре (instanceID, stepID шаблона)
	SetStepCompletion(ctx context.Context, instanceID, stepID string, isCompleted bool, completedAt *time.Time) (*domain.InstanceStep, error)
	Complete(ctx context.Context, instanceID string, completedAt time.Time) (*domain.ChecklistInstance, error)
}
