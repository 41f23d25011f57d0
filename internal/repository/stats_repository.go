package repository

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type StatsRepository interface {
	GetTemplateStats(ctx context.Context, templateID string) (*domain.TemplateStats, error)
}
