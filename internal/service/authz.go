package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
)

// requireMembership - центральный предикат доступа ко всем командным операциям.
// Возвращает Forbidden, если у пользователя нет членства в команде.
func requireMembership(ctx context.Context, teamRepo repository.TeamRepository, teamID, userID string) (*domain.TeamMember, error) {
	member, err := teamRepo.GetMembership(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewForbiddenError("not a member of this team")
		}
		return nil, err
	}
	return member, nil
}

// requireRole проверяет членство и вхождение роли в список разрешенных
func requireRole(ctx context.Context, teamRepo repository.TeamRepository, teamID, userID string, allowed ...domain.Role) (*domain.TeamMember, error) {
	member, err := requireMembership(ctx, teamRepo, teamID, userID)
	if err != nil {
		return nil, err
	}
	if !member.Role.HasRole(allowed...) {
		return nil, domain.ErrForbidden
	}
	return member, nil
}

// canViewTemplate - владелец видит шаблон всегда; остальные - только через
// активный шаринг в команде, где они состоят
func canViewTemplate(ctx context.Context, sharingRepo repository.SharingRepository, template *domain.ChecklistTemplate, userID string) (bool, error) {
	if template.UserID == userID {
		return true, nil
	}
	return sharingRepo.HasActiveShareForUser(ctx, template.ID, userID)
}
