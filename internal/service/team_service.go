package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type TeamService interface {
	Create(ctx context.Context, identity domain.Identity, name, description string, privacy domain.PrivacyLevel) (*domain.Team, error)
	List(ctx context.Context, identity domain.Identity) ([]*domain.TeamSummary, error)
	Get(ctx context.Context, identity domain.Identity, teamID string) (*domain.TeamDetail, error)
	RemoveMember(ctx context.Context, identity domain.Identity, teamID, targetUserID string) error
	UpdateMemberRole(ctx context.Context, identity domain.Identity, teamID, targetUserID string, role domain.Role) error
}
