package repository

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type TemplateRepository interface {
	// Create создает шаблон и его шаги одной транзакцией
	Create(ctx context.Context, template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) error
	GetByID(ctx context.Context, id string) (*domain.ChecklistTemplate, error)
	GetSteps(ctx context.Context, templateID string) ([]*domain.ChecklistStep, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.ChecklistTemplate, error)
	// Update обновляет заголовок и целиком заменяет шаги одной транзакцией
	Update(ctx context.Context, template *domain.ChecklistTemplate, steps []*domain.ChecklistStep) error
	Delete(ctx context.Context, id string) error
}
