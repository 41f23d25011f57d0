package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type TemplateService interface {
	Create(ctx context.Context, identity domain.Identity, title string, steps []string) (*domain.ChecklistTemplate, []*domain.ChecklistStep, error)
	Get(ctx context.Context, identity domain.Identity, templateID string) (*domain.ChecklistTemplate, []*domain.ChecklistStep, error)
	List(ctx context.Context, identity domain.Identity) ([]*domain.ChecklistTemplate, error)
	Update(ctx context.Context, identity domain.Identity, templateID, title string, steps []string) (*domain.ChecklistTemplate, []*domain.ChecklistStep, error)
	Delete(ctx context.Context, identity domain.Identity, templateID string) error
}
