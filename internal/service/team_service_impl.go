package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
)

type teamService struct {
	teamRepo       repository.TeamRepository
	invitationRepo repository.InvitationRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository, invitationRepo repository.InvitationRepository) TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		invitationRepo: invitationRepo,
	}
}

// Create создает команду вместе с owner-членством создателя.
// Хранилище выполняет обе записи одной транзакцией, а уникальный
// констрейнт (owner_id, name) страхует проверку имени от гонок.
func (s *teamService) Create(ctx context.Context, identity domain.Identity, name, description string, privacy domain.PrivacyLevel) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("team name is required")
	}
	if len(name) > 255 {
		return nil, domain.NewValidationError("team name must be 255 characters or less")
	}
	if privacy == "" {
		privacy = domain.PrivacyPrivate
	}
	if privacy != domain.PrivacyPrivate && privacy != domain.PrivacyPublic {
		return nil, domain.NewValidationError("privacy level must be 'private' or 'public'")
	}

	existing, err := s.teamRepo.GetByOwnerAndName(ctx, identity.UserID, name)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("you already have a team with this name")
	}

	team := &domain.Team{
		Name:         name,
		Description:  strings.TrimSpace(description),
		OwnerID:      identity.UserID,
		PrivacyLevel: privacy,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (s *teamService) List(ctx context.Context, identity domain.Identity) ([]*domain.TeamSummary, error) {
	return s.teamRepo.ListByUserID(ctx, identity.UserID)
}

// Get возвращает детали команды только участнику; для остальных
// команда неотличима от несуществующей
func (s *teamService) Get(ctx context.Context, identity domain.Identity, teamID string) (*domain.TeamDetail, error) {
	membership, err := s.teamRepo.GetMembership(ctx, teamID, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	members, err := s.teamRepo.GetMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	pending, err := s.invitationRepo.CountPendingByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &domain.TeamDetail{
		Team:               team,
		Members:            members,
		PendingInvitations: pending,
		CallerRole:         membership.Role,
	}, nil
}

// RemoveMember доступен только владельцу; самоудаление этим путем запрещено
func (s *teamService) RemoveMember(ctx context.Context, identity domain.Identity, teamID, targetUserID string) error {
	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner); err != nil {
		return err
	}
	if identity.UserID == targetUserID {
		return domain.NewValidationError("cannot remove yourself from the team")
	}

	if _, err := s.teamRepo.GetMembership(ctx, teamID, targetUserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("team member")
		}
		return err
	}

	return s.teamRepo.RemoveMember(ctx, teamID, targetUserID)
}

// UpdateMemberRole меняет роль на member или admin; роль owner неизменяема
func (s *teamService) UpdateMemberRole(ctx context.Context, identity domain.Identity, teamID, targetUserID string, role domain.Role) error {
	if role != domain.RoleMember && role != domain.RoleAdmin {
		return domain.NewValidationError("role must be 'member' or 'admin'")
	}

	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner); err != nil {
		return err
	}

	target, err := s.teamRepo.GetMembership(ctx, teamID, targetUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("team member")
		}
		return err
	}
	if target.Role == domain.RoleOwner {
		return domain.NewValidationError("cannot change owner role")
	}

	return s.teamRepo.UpdateMemberRole(ctx, teamID, targetUserID, role)
}
