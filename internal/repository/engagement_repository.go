package repository

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

// EngagementRepository - избранное и отзывы по шаблонам.
// Пустой teamID означает личный контекст (NULL в хранилище).
type EngagementRepository interface {
	CreateFavorite(ctx context.Context, favorite *domain.TemplateFavorite) error
	GetFavorite(ctx context.Context, userID, templateID, teamID string) (*domain.TemplateFavorite, error)
	DeleteFavorite(ctx context.Context, userID, templateID, teamID string) error
	ListFavoritesByUserID(ctx context.Context, userID string) ([]*domain.TemplateFavorite, error)

	CreateFeedback(ctx context.Context, feedback *domain.TemplateFeedback) error
	GetFeedback(ctx context.Context, userID, templateID, teamID string) (*domain.TemplateFeedback, error)
	ListFeedbackByTemplateID(ctx context.Context, templateID string) ([]*domain.TemplateFeedback, error)
}
