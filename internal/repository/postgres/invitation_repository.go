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

type invitationRepository struct {
	executor DBExecutor
}

func NewInvitationRepository(db *sql.DB) *invitationRepository {
	return &invitationRepository{executor: db}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *domain.TeamInvitation) error {
	if invitation.ID == "" {
		invitation.ID = uuid.NewString()
	}

	query := `
		INSERT INTO team_invitations (id, team_id, invited_email, invited_by, token, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING created_at, updated_at
	`
	return r.executor.QueryRowContext(
		ctx,
		query,
		invitation.ID,
		invitation.TeamID,
		invitation.InvitedEmail,
		invitation.InvitedBy,
		invitation.Token,
		string(invitation.Status),
		invitation.ExpiresAt,
		time.Now(),
	).Scan(&invitation.CreatedAt, &invitation.UpdatedAt)
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.TeamInvitation, error) {
	query := `
		SELECT id, team_id, invited_email, invited_by, token, status, expires_at, created_at, updated_at
		FROM team_invitations
		WHERE id = $1
	`
	return r.scanInvitation(r.executor.QueryRowContext(ctx, query, id))
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.TeamInvitation, error) {
	query := `
		SELECT i.id, i.team_id, i.invited_email, i.invited_by, i.token, i.status, i.expires_at, i.created_at, i.updated_at,
		       t.name, t.description, u.name, u.email
		FROM team_invitations i
		JOIN teams t ON i.team_id = t.id
		JOIN users u ON i.invited_by = u.id
		WHERE i.token = $1
	`

	invitation := &domain.TeamInvitation{}
	var status string
	var teamDescription, inviterName sql.NullString
	err := r.executor.QueryRowContext(ctx, query, token).Scan(
		&invitation.ID,
		&invitation.TeamID,
		&invitation.InvitedEmail,
		&invitation.InvitedBy,
		&invitation.Token,
		&status,
		&invitation.ExpiresAt,
		&invitation.CreatedAt,
		&invitation.UpdatedAt,
		&invitation.TeamName,
		&teamDescription,
		&inviterName,
		&invitation.InviterEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	invitation.Status = domain.InvitationStatus(status)
	invitation.TeamDescription = teamDescription.String
	invitation.InviterName = inviterName.String
	return invitation, nil
}

func (r *invitationRepository) GetPendingByTeamAndEmail(ctx context.Context, teamID, email string) (*domain.TeamInvitation, error) {
	query := `
		SELECT id, team_id, invited_email, invited_by, token, status, expires_at, created_at, updated_at
		FROM team_invitations
		WHERE team_id = $1 AND invited_email = $2 AND status = 'pending'
	`
	return r.scanInvitation(r.executor.QueryRowContext(ctx, query, teamID, email))
}

func (r *invitationRepository) ListPendingByTeamID(ctx context.Context, teamID string) ([]*domain.TeamInvitation, error) {
	query := `
		SELECT id, team_id, invited_email, invited_by, token, status, expires_at, created_at, updated_at
		FROM team_invitations
		WHERE team_id = $1 AND status = 'pending'
		ORDER BY created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitations := make([]*domain.TeamInvitation, 0)
	for rows.Next() {
		invitation := &domain.TeamInvitation{}
		var status string
		err := rows.Scan(
			&invitation.ID,
			&invitation.TeamID,
			&invitation.InvitedEmail,
			&invitation.InvitedBy,
			&invitation.Token,
			&status,
			&invitation.ExpiresAt,
			&invitation.CreatedAt,
			&invitation.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		invitation.Status = domain.InvitationStatus(status)
		invitations = append(invitations, invitation)
	}

	return invitations, rows.Err()
}

func (r *invitationRepository) CountPendingByTeamID(ctx context.Context, teamID string) (int, error) {
	var count int
	err := r.executor.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM team_invitations WHERE team_id = $1 AND status = 'pending'`,
		teamID,
	).Scan(&count)
	return count, err
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error {
	result, err := r.executor.ExecContext(
		ctx,
		`UPDATE team_invitations SET status = $2, updated_at = $3 WHERE id = $1`,
		id,
		string(status),
		time.Now(),
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

func (r *invitationRepository) scanInvitation(row *sql.Row) (*domain.TeamInvitation, error) {
	invitation := &domain.TeamInvitation{}
	var status string
	err := row.Scan(
		&invitation.ID,
		&invitation.TeamID,
		&invitation.InvitedEmail,
		&invitation.InvitedBy,
		&invitation.Token,
		&status,
		&invitation.ExpiresAt,
		&invitation.CreatedAt,
		&invitation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	invitation.Status = domain.InvitationStatus(status)
	return invitation, nil
}
