package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type InvitationAction string

const (
	InvitationAccept  InvitationAction = "accept"
	InvitationDecline InvitationAction = "decline"
)

type InvitationService interface {
	Create(ctx context.Context, identity domain.Identity, teamID, email string) (*domain.TeamInvitation, error)
	List(ctx context.Context, identity domain.Identity, teamID string) ([]*domain.TeamInvitation, error)
	Cancel(ctx context.Context, identity domain.Identity, teamID, invitationID string) error
	Resend(ctx context.Context, identity domain.Identity, teamID, invitationID string) error
	// GetByToken - публичное чтение для страницы приглашения
	GetByToken(ctx context.Context, token string) (*domain.TeamInvitation, error)
	Respond(ctx context.Context, identity domain.Identity, token string, action InvitationAction) (*domain.TeamInvitation, error)
}
