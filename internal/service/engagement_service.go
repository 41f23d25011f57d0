package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

// EngagementService - избранное, отзывы и статистика по шаблонам.
// Пустой teamID означает личный контекст.
type EngagementService interface {
	AddFavorite(ctx context.Context, identity domain.Identity, templateID, teamID string) (*domain.TemplateFavorite, error)
	RemoveFavorite(ctx context.Context, identity domain.Identity, templateID, teamID string) error
	ListFavorites(ctx context.Context, identity domain.Identity) ([]*domain.TemplateFavorite, error)

	AddFeedback(ctx context.Context, identity domain.Identity, input FeedbackInput) (*domain.TemplateFeedback, error)
	ListFeedback(ctx context.Context, identity domain.Identity, templateID string) ([]*domain.TemplateFeedback, error)

	TemplateStats(ctx context.Context, identity domain.Identity, templateID string) (*domain.TemplateStats, error)
}

type FeedbackInput struct {
	TemplateID string
	TeamID     string
	Comment    string
	Rating     *int
}
