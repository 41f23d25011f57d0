package service

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type SharingService interface {
	// Share делится собственным шаблоном с командой
	Share(ctx context.Context, identity domain.Identity, teamID, templateID string) (*domain.TeamTemplate, error)
	// Unshare - мягкое удаление активного шаринга
	Unshare(ctx context.Context, identity domain.Identity, teamID, templateID string) error
	SetOfficial(ctx context.Context, identity domain.Identity, teamID, templateID string, isOfficial bool) (*domain.TeamTemplate, error)
	ListTeamTemplates(ctx context.Context, identity domain.Identity, teamID string) ([]*domain.TeamTemplate, error)
}
