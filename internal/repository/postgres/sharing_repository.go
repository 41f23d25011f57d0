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

type sharingRepository struct {
	executor DBExecutor
}

func NewSharingRepository(db *sql.DB) *sharingRepository {
	return &sharingRepository{executor: db}
}

func (r *sharingRepository) Create(ctx context.Context, share *domain.TeamTemplate) error {
	if share.ID == "" {
		share.ID = uuid.NewString()
	}

	query := `
		INSERT INTO team_templates (id, team_id, template_id, shared_by, shared_at, is_official, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING created_at, updated_at
	`
	return r.executor.QueryRowContext(
		ctx,
		query,
		share.ID,
		share.TeamID,
		share.TemplateID,
		share.SharedBy,
		share.SharedAt,
		share.IsOfficial,
		string(share.Status),
		time.Now(),
	).Scan(&share.CreatedAt, &share.UpdatedAt)
}

func (r *sharingRepository) GetActive(ctx context.Context, teamID, templateID string) (*domain.TeamTemplate, error) {
	query := `
		SELECT id, team_id, template_id, shared_by, shared_at, is_official, status, created_at, updated_at
		FROM team_templates
		WHERE team_id = $1 AND template_id = $2 AND status = 'active'
	`

	share := &domain.TeamTemplate{}
	var status string
	err := r.executor.QueryRowContext(ctx, query, teamID, templateID).Scan(
		&share.ID,
		&share.TeamID,
		&share.TemplateID,
		&share.SharedBy,
		&share.SharedAt,
		&share.IsOfficial,
		&status,
		&share.CreatedAt,
		&share.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	share.Status = domain.ShareStatus(status)
	return share, nil
}

func (r *sharingRepository) ListActiveByTeamID(ctx context.Context, teamID string) ([]*domain.TeamTemplate, error) {
	query := `
		SELECT tt.id, tt.team_id, tt.template_id, tt.shared_by, tt.shared_at, tt.is_official, tt.status,
		       tt.created_at, tt.updated_at, t.title, u.name, u.email
		FROM team_templates tt
		JOIN checklist_templates t ON tt.template_id = t.id
		JOIN users u ON tt.shared_by = u.id
		WHERE tt.team_id = $1 AND tt.status = 'active'
		ORDER BY tt.is_official DESC, tt.shared_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shares := make([]*domain.TeamTemplate, 0)
	for rows.Next() {
		share := &domain.TeamTemplate{}
		var status string
		var sharedByName sql.NullString
		err := rows.Scan(
			&share.ID,
			&share.TeamID,
			&share.TemplateID,
			&share.SharedBy,
			&share.SharedAt,
			&share.IsOfficial,
			&status,
			&share.CreatedAt,
			&share.UpdatedAt,
			&share.TemplateTitle,
			&sharedByName,
			&share.SharedByEmail,
		)
		if err != nil {
			return nil, err
		}
		share.Status = domain.ShareStatus(status)
		share.SharedByName = sharedByName.String
		shares = append(shares, share)
	}

	return shares, rows.Err()
}

func (r *sharingRepository) SetStatus(ctx context.Context, teamID, templateID string, status domain.ShareStatus) (*domain.TeamTemplate, error) {
	query := `
		UPDATE team_templates
		SET status = $3, updated_at = $4
		WHERE team_id = $1 AND template_id = $2 AND status = 'active'
		RETURNING id, team_id, template_id, shared_by, shared_at, is_official, status, created_at, updated_at
	`
	return r.scanShare(r.executor.QueryRowContext(ctx, query, teamID, templateID, string(status), time.Now()))
}

func (r *sharingRepository) SetOfficial(ctx context.Context, teamID, templateID string, isOfficial bool) (*domain.TeamTemplate, error) {
	query := `
		UPDATE team_templates
		SET is_official = $3, updated_at = $4
		WHERE team_id = $1 AND template_id = $2 AND status = 'active'
		RETURNING id, team_id, template_id, shared_by, shared_at, is_official, status, created_at, updated_at
	`
	return r.scanShare(r.executor.QueryRowContext(ctx, query, teamID, templateID, isOfficial, time.Now()))
}

func (r *sharingRepository) HasActiveShareForUser(ctx context.Context, templateID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM team_templates tt
			JOIN team_members m ON tt.team_id = m.team_id
			WHERE tt.template_id = $1 AND tt.status = 'active' AND m.user_id = $2
		)
	`

	var exists bool
	err := r.executor.QueryRowContext(ctx, query, templateID, userID).Scan(&exists)
	return exists, err
}

func (r *sharingRepository) scanShare(row *sql.Row) (*domain.TeamTemplate, error) {
	share := &domain.TeamTemplate{}
	var status string
	err := row.Scan(
		&share.ID,
		&share.TeamID,
		&share.TemplateID,
		&share.SharedBy,
		&share.SharedAt,
		&share.IsOfficial,
		&status,
		&share.CreatedAt,
		&share.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	share.Status = domain.ShareStatus(status)
	return share, nil
}
