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

type teamRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db, executor: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}

	query := `
		INSERT INTO teams (id, name, description, owner_id, privacy_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at
	`
	var description sql.NullString
	if team.Description != "" {
		description = sql.NullString{String: team.Description, Valid: true}
	}
	now := time.Now()
	err = tx.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		description,
		team.OwnerID,
		string(team.PrivacyLevel),
		now,
	).Scan(&team.CreatedAt, &team.UpdatedAt)
	if err != nil {
		return err
	}

	// команда не должна существовать без членства владельца
	memberQuery := `
		INSERT INTO team_members (id, team_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, memberQuery, uuid.NewString(), team.ID, team.OwnerID, string(domain.RoleOwner), now)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, name, description, owner_id, privacy_level, created_at, updated_at
		FROM teams
		WHERE id = $1
	`
	return r.scanTeam(r.executor.QueryRowContext(ctx, query, id))
}

func (r *teamRepository) GetByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Team, error) {
	query := `
		SELECT id, name, description, owner_id, privacy_level, created_at, updated_at
		FROM teams
		WHERE owner_id = $1 AND name = $2
	`
	return r.scanTeam(r.executor.QueryRowContext(ctx, query, ownerID, name))
}

func (r *teamRepository) scanTeam(row *sql.Row) (*domain.Team, error) {
	team := &domain.Team{}
	var description sql.NullString
	var privacy string
	err := row.Scan(
		&team.ID,
		&team.Name,
		&description,
		&team.OwnerID,
		&privacy,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	team.Description = description.String
	team.PrivacyLevel = domain.PrivacyLevel(privacy)
	return team, nil
}

func (r *teamRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.TeamSummary, error) {
	query := `
		SELECT t.id, t.name, t.description, t.owner_id, t.privacy_level, t.created_at, t.updated_at, m.role
		FROM teams t
		JOIN team_members m ON t.id = m.team_id
		WHERE m.user_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]*domain.TeamSummary, 0)
	for rows.Next() {
		team := &domain.Team{}
		var description sql.NullString
		var privacy, role string
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&description,
			&team.OwnerID,
			&privacy,
			&team.CreatedAt,
			&team.UpdatedAt,
			&role,
		)
		if err != nil {
			return nil, err
		}
		team.Description = description.String
		team.PrivacyLevel = domain.PrivacyLevel(privacy)
		summaries = append(summaries, &domain.TeamSummary{Team: team, Role: domain.Role(role)})
	}

	return summaries, rows.Err()
}

func (r *teamRepository) GetMembership(ctx context.Context, teamID, userID string) (*domain.TeamMember, error) {
	query := `
		SELECT id, team_id, user_id, role, joined_at
		FROM team_members
		WHERE team_id = $1 AND user_id = $2
	`

	member := &domain.TeamMember{}
	var role string
	err := r.executor.QueryRowContext(ctx, query, teamID, userID).Scan(
		&member.ID,
		&member.TeamID,
		&member.UserID,
		&role,
		&member.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	member.Role = domain.Role(role)
	return member, nil
}

func (r *teamRepository) GetMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	query := `
		SELECT m.id, m.team_id, m.user_id, m.role, m.joined_at, u.name, u.email
		FROM team_members m
		JOIN users u ON m.user_id = u.id
		WHERE m.team_id = $1
		ORDER BY m.joined_at
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		member := &domain.TeamMember{}
		var role string
		var userName sql.NullString
		err := rows.Scan(
			&member.ID,
			&member.TeamID,
			&member.UserID,
			&role,
			&member.JoinedAt,
			&userName,
			&member.UserEmail,
		)
		if err != nil {
			return nil, err
		}
		member.Role = domain.Role(role)
		member.UserName = userName.String
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *teamRepository) AddMember(ctx context.Context, member *domain.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	query := `
		INSERT INTO team_members (id, team_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING joined_at
	`
	return r.executor.QueryRowContext(
		ctx,
		query,
		member.ID,
		member.TeamID,
		member.UserID,
		string(member.Role),
		time.Now(),
	).Scan(&member.JoinedAt)
}

func (r *teamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	result, err := r.executor.ExecContext(
		ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID,
		userID,
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

func (r *teamRepository) UpdateMemberRole(ctx context.Context, teamID, userID string, role domain.Role) error {
	result, err := r.executor.ExecContext(
		ctx,
		`UPDATE team_members SET role = $3 WHERE team_id = $1 AND user_id = $2`,
		teamID,
		userID,
		string(role),
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
