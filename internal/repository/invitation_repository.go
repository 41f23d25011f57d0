package repository

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.TeamInvitation) error
	GetByID(ctx context.Context, id string) (*domain.TeamInvitation, error)
	// GetByToken возвращает приглашение вместе с данными команды и пригласившего
	GetByToken(ctx context.Context, token string) (*domain.TeamInvitation, error)
	GetPendingByTeamAndEmail(ctx context.Context, teamID, email string) (*domain.TeamInvitation, error)
	ListPendingByTeamID(ctx context.Context, teamID string) ([]*domain.TeamInvitation, error)
	CountPendingByTeamID(ctx context.Context, teamID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error
}
