package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetTemplateStats(ctx context.Context, templateID string) (*domain.TemplateStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM template_favorites WHERE template_id = $1),
			(SELECT COUNT(*) FROM template_feedback WHERE template_id = $1),
			(SELECT AVG(rating) FROM template_feedback WHERE template_id = $1 AND rating IS NOT NULL)
	`

	stats := &domain.TemplateStats{TemplateID: templateID}
	var avgRating sql.NullFloat64
	err := r.executor.QueryRowContext(ctx, query, templateID).Scan(
		&stats.FavoriteCount,
		&stats.FeedbackCount,
		&avgRating,
	)
	if err != nil {
		return nil, err
	}

	if avgRating.Valid {
		stats.AverageRating = &avgRating.Float64
	}

	return stats, nil
}
