package repository

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type TeamRepository interface {
	// Create создает команду и членство владельца одной транзакцией:
	// команда никогда не существует без owner-членства
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByOwnerAndName(ctx context.Context, ownerID, name string) (*domain.Team, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.TeamSummary, error)
	GetMembership(ctx context.Context, teamID, userID string) (*domain.TeamMember, error)
	GetMembers(ctx context.Context, teamID string) ([]*domain.TeamMember, error)
	AddMember(ctx context.Context, member *domain.TeamMember) error
	RemoveMember(ctx context.Context, teamID, userID string) error
	UpdateMemberRole(ctx context.Context, teamID, userID string, role domain.Role) error
}
