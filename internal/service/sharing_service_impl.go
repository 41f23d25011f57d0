package service

import (
	"context"
	"errors"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
)

type sharingService struct {
	sharingRepo  repository.SharingRepository
	templateRepo repository.TemplateRepository
	teamRepo     repository.TeamRepository
}

// NewSharingService создает новый экземпляр SharingService
func NewSharingService(
	sharingRepo repository.SharingRepository,
	templateRepo repository.TemplateRepository,
	teamRepo repository.TeamRepository,
) SharingService {
	return &sharingService{
		sharingRepo:  sharingRepo,
		templateRepo: templateRepo,
		teamRepo:     teamRepo,
	}
}

// Share - делиться можно только собственным шаблоном и только в команде,
// где состоишь. Повторный активный шаринг - Conflict.
func (s *sharingService) Share(ctx context.Context, identity domain.Identity, teamID, templateID string) (*domain.TeamTemplate, error) {
	if _, err := requireMembership(ctx, s.teamRepo, teamID, identity.UserID); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("template")
		}
		return nil, err
	}
	// чужой шаблон не раскрываем
	if template.UserID != identity.UserID {
		return nil, domain.NewNotFoundError("template")
	}

	existing, err := s.sharingRepo.GetActive(ctx, teamID, templateID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("template is already shared with this team")
	}

	share := &domain.TeamTemplate{
		TeamID:     teamID,
		TemplateID: templateID,
		SharedBy:   identity.UserID,
		SharedAt:   time.Now(),
		Status:     domain.ShareActive,
	}
	if err := s.sharingRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	return share, nil
}

// Unshare переводит активный шаринг в removed. Историю не трогаем.
func (s *sharingService) Unshare(ctx context.Context, identity domain.Identity, teamID, templateID string) error {
	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.sharingRepo.SetStatus(ctx, teamID, templateID, domain.ShareRemoved); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("shared template")
		}
		return err
	}
	return nil
}

func (s *sharingService) SetOfficial(ctx context.Context, identity domain.Identity, teamID, templateID string, isOfficial bool) (*domain.TeamTemplate, error) {
	if _, err := requireRole(ctx, s.teamRepo, teamID, identity.UserID, domain.RoleOwner, domain.RoleAdmin); err != nil {
		return nil, err
	}

	share, err := s.sharingRepo.SetOfficial(ctx, teamID, templateID, isOfficial)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("shared template")
		}
		return nil, err
	}
	return share, nil
}

func (s *sharingService) ListTeamTemplates(ctx context.Context, identity domain.Identity, teamID string) ([]*domain.TeamTemplate, error) {
	if _, err := requireMembership(ctx, s.teamRepo, teamID, identity.UserID); err != nil {
		return nil, err
	}
	return s.sharingRepo.ListActiveByTeamID(ctx, teamID)
}
