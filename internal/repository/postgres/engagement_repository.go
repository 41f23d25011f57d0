package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
	"github.com/google/uuid"
)

type engagementRepository struct {
	executor DBExecutor
}

func NewEngagementRepository(db *sql.DB) *engagementRepository {
	return &engagementRepository{executor: db}
}

// nullableID преобразует пустой идентификатор в NULL
func nullableID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}

func (r *engagementRepository) CreateFavorite(ctx context.Context, favorite *domain.TemplateFavorite) error {
	if favorite.ID == "" {
		favorite.ID = uuid.NewString()
	}

	query := `
		INSERT INTO template_favorites (id, user_id, template_id, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return r.executor.QueryRowContext(
		ctx,
		query,
		favorite.ID,
		favorite.UserID,
		favorite.TemplateID,
		nullableID(favorite.TeamID),
		time.Now(),
	).Scan(&favorite.CreatedAt)
}

func (r *engagementRepository) GetFavorite(ctx context.Context, userID, templateID, teamID string) (*domain.TemplateFavorite, error) {
	query := `
		SELECT id, user_id, template_id, team_id, created_at
		FROM template_favorites
		WHERE user_id = $1 AND template_id = $2 AND team_id IS NOT DISTINCT FROM $3
	`

	favorite := &domain.TemplateFavorite{}
	var team sql.NullString
	err := r.executor.QueryRowContext(ctx, query, userID, templateID, nullableID(teamID)).Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.TemplateID,
		&team,
		&favorite.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	favorite.TeamID = team.String
	return favorite, nil
}

func (r *engagementRepository) DeleteFavorite(ctx context.Context, userID, templateID, teamID string) error {
	result, err := r.executor.ExecContext(
		ctx,
		`DELETE FROM template_favorites WHERE user_id = $1 AND template_id = $2 AND team_id IS NOT DISTINCT FROM $3`,
		userID,
		templateID,
		nullableID(teamID),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *engagementRepository) ListFavoritesByUserID(ctx context.Context, userID string) ([]*domain.TemplateFavorite, error) {
	query := `
		SELECT f.id, f.user_id, f.template_id, f.team_id, f.created_at, t.title
		FROM template_favorites f
		JOIN checklist_templates t ON f.template_id = t.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]*domain.TemplateFavorite, 0)
	for rows.Next() {
		favorite := &domain.TemplateFavorite{}
		var team sql.NullString
		err := rows.Scan(
			&favorite.ID,
			&favorite.UserID,
			&favorite.TemplateID,
			&team,
			&favorite.CreatedAt,
			&favorite.TemplateTitle,
		)
		if err != nil {
			return nil, err
		}
		favorite.TeamID = team.String
		favorites = append(favorites, favorite)
	}

	return favorites, rows.Err()
}

func (r *engagementRepository) CreateFeedback(ctx context.Context, feedback *domain.TemplateFeedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}

	var rating sql.NullInt64
	if feedback.Rating != nil {
		rating = sql.NullInt64{Int64: int64(*feedback.Rating), Valid: true}
	}

	query := `
		INSERT INTO template_feedback (id, template_id, user_id, team_id, comment, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.executor.QueryRowContext(
		ctx,
		query,
		feedback.ID,
		feedback.TemplateID,
		feedback.UserID,
		nullableID(feedback.TeamID),
		feedback.Comment,
		rating,
		time.Now(),
	).Scan(&feedback.CreatedAt)
}

func (r *engagementRepository) GetFeedback(ctx context.Context, userID, templateID, teamID string) (*domain.TemplateFeedback, error) {
	query := `
		SELECT id, template_id, user_id, team_id, comment, rating, created_at
		FROM template_feedback
		WHERE user_id = $1 AND template_id = $2 AND team_id IS NOT DISTINCT FROM $3
	`

	feedback := &domain.TemplateFeedback{}
	var team sql.NullString
	var rating sql.NullInt64
	err := r.executor.QueryRowContext(ctx, query, userID, templateID, nullableID(teamID)).Scan(
		&feedback.ID,
		&feedback.TemplateID,
		&feedback.UserID,
		&team,
		&feedback.Comment,
		&rating,
		&feedback.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	feedback.TeamID = team.String
	if rating.Valid {
		value := int(rating.Int64)
		feedback.Rating = &value
	}
	return feedback, nil
}

func (r *engagementRepository) ListFeedbackByTemplateID(ctx context.Context, templateID string) ([]*domain.TemplateFeedback, error) {
	query := `
		SELECT f.id, f.template_id, f.user_id, f.team_id, f.comment, f.rating, f.created_at, u.name, u.email
		FROM template_feedback f
		JOIN users u ON f.user_id = u.id
		WHERE f.template_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]*domain.TemplateFeedback, 0)
	for rows.Next() {
		feedback := &domain.TemplateFeedback{}
		var team, userName sql.NullString
		var rating sql.NullInt64
		err := rows.Scan(
			&feedback.ID,
			&feedback.TemplateID,
			&feedback.UserID,
			&team,
			&feedback.Comment,
			&rating,
			&feedback.CreatedAt,
			&userName,
			&feedback.UserEmail,
		)
		if err != nil {
			return nil, err
		}
		feedback.TeamID = team.String
		feedback.UserName = userName.String
		if rating.Valid {
			value := int(rating.Int64)
			feedback.Rating = &value
		}
		feedbacks = append(feedbacks, feedback)
	}

	return feedbacks, rows.Err()
}
