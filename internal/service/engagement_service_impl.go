package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
)

type engagementService struct {
	engagementRepo repository.EngagementRepository
	statsRepo      repository.StatsRepository
	templateRepo   repository.TemplateRepository
	sharingRepo    repository.SharingRepository
	teamRepo       repository.TeamRepository
}

// NewEngagementService создает новый экземпляр EngagementService
func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	statsRepo repository.StatsRepository,
	templateRepo repository.TemplateRepository,
	sharingRepo repository.SharingRepository,
	teamRepo repository.TeamRepository,
) EngagementService {
	return &engagementService{
		engagementRepo: engagementRepo,
		statsRepo:      statsRepo,
		templateRepo:   templateRepo,
		sharingRepo:    sharingRepo,
		teamRepo:       teamRepo,
	}
}

// requireVisibleTemplate скрывает существование недоступного шаблона:
// и неизвестный, и невидимый дают NotFound
func (s *engagementService) requireVisibleTemplate(ctx context.Context, templateID, userID string) (*domain.ChecklistTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("template")
		}
		return nil, err
	}
	visible, err := canViewTemplate(ctx, s.sharingRepo, template, userID)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, domain.NewNotFoundError("template")
	}
	return template, nil
}

func (s *engagementService) AddFavorite(ctx context.Context, identity domain.Identity, templateID, teamID string) (*domain.TemplateFavorite, error) {
	if _, err := s.requireVisibleTemplate(ctx, templateID, identity.UserID); err != nil {
		return nil, err
	}
	if teamID != "" {
		if _, err := requireMembership(ctx, s.teamRepo, teamID, identity.UserID); err != nil {
			return nil, err
		}
	}

	existing, err := s.engagementRepo.GetFavorite(ctx, identity.UserID, templateID, teamID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("template is already in favorites")
	}

	favorite := &domain.TemplateFavorite{
		UserID:     identity.UserID,
		TemplateID: templateID,
		TeamID:     teamID,
	}
	if err := s.engagementRepo.CreateFavorite(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *engagementService) RemoveFavorite(ctx context.Context, identity domain.Identity, templateID, teamID string) error {
	err := s.engagementRepo.DeleteFavorite(ctx, identity.UserID, templateID, teamID)
	if errors.Is(err, repository.ErrNotFound) && teamID != "" {
		// избранное могло быть добавлено в личном контексте
		err = s.engagementRepo.DeleteFavorite(ctx, identity.UserID, templateID, "")
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("favorite")
		}
		return err
	}
	return nil
}

func (s *engagementService) ListFavorites(ctx context.Context, identity domain.Identity) ([]*domain.TemplateFavorite, error) {
	return s.engagementRepo.ListFavoritesByUserID(ctx, identity.UserID)
}

func (s *engagementService) AddFeedback(ctx context.Context, identity domain.Identity, input FeedbackInput) (*domain.TemplateFeedback, error) {
	comment := strings.TrimSpace(input.Comment)
	if comment == "" {
		return nil, domain.NewValidationError("comment is required")
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, domain.NewValidationError("rating must be between 1 and 5")
	}

	if _, err := s.requireVisibleTemplate(ctx, input.TemplateID, identity.UserID); err != nil {
		return nil, err
	}
	if input.TeamID != "" {
		if _, err := requireMembership(ctx, s.teamRepo, input.TeamID, identity.UserID); err != nil {
			return nil, err
		}
	}

	existing, err := s.engagementRepo.GetFeedback(ctx, identity.UserID, input.TemplateID, input.TeamID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewConflictError("feedback already submitted for this template")
	}

	feedback := &domain.TemplateFeedback{
		UserID:     identity.UserID,
		TemplateID: input.TemplateID,
		TeamID:     input.TeamID,
		Comment:    comment,
		Rating:     input.Rating,
	}
	if err := s.engagementRepo.CreateFeedback(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *engagementService) ListFeedback(ctx context.Context, identity domain.Identity, templateID string) ([]*domain.TemplateFeedback, error) {
	if _, err := s.requireVisibleTemplate(ctx, templateID, identity.UserID); err != nil {
		return nil, err
	}
	return s.engagementRepo.ListFeedbackByTemplateID(ctx, templateID)
}

func (s *engagementService) TemplateStats(ctx context.Context, identity domain.Identity, templateID string) (*domain.TemplateStats, error) {
	if _, err := s.requireVisibleTemplate(ctx, templateID, identity.UserID); err != nil {
		return nil, err
	}
	return s.statsRepo.GetTemplateStats(ctx, templateID)
}
