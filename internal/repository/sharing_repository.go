package repository

import (
	"context"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

type SharingRepository interface {
	Create(ctx context.Context, share *domain.TeamTemplate) error
	GetActive(ctx context.Context, teamID, templateID string) (*domain.TeamTemplate, error)
	// ListActiveByTeamID возвращает активные шаринги: официальные сначала, затем новые
	ListActiveByTeamID(ctx context.Context, teamID string) ([]*domain.TeamTemplate, error)
	// SetStatus - мягкое удаление: затрагивает только активную запись
	SetStatus(ctx context.Context, teamID, templateID string, status domain.ShareStatus) (*domain.TeamTemplate, error)
	SetOfficial(ctx context.Context, teamID, templateID string, isOfficial bool) (*domain.TeamTemplate, error)
	// HasActiveShareForUser - есть ли активный шаринг шаблона в команде,
	// где состоит пользователь (доступ на чтение чужого шаблона)
	HasActiveShareForUser(ctx context.Context, templateID, userID string) (bool, error)
}
