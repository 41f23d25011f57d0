package service

import (
	"context"
	"testing"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEngagementServiceForTest() (EngagementService, *MockEngagementRepository, *MockStatsRepository, *MockTemplateRepository, *MockSharingRepository, *MockTeamRepository) {
	mockEngagementRepo := new(MockEngagementRepository)
	mockStatsRepo := new(MockStatsRepository)
	mockTemplateRepo := new(MockTemplateRepository)
	mockSharingRepo := new(MockSharingRepository)
	mockTeamRepo := new(MockTeamRepository)
	service := NewEngagementService(mockEngagementRepo, mockStatsRepo, mockTemplateRepo, mockSharingRepo, mockTeamRepo)
	return service, mockEngagementRepo, mockStatsRepo, mockTemplateRepo, mockSharingRepo, mockTeamRepo
}

func intPtr(v int) *int { return &v }

func TestEngagementService_AddFavorite(t *testing.T) {
	ownTemplate := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1"}

	t.Run("личное избранное без команды", func(t *testing.T) {
		service, mockEngagementRepo, _, mockTemplateRepo, _, _ := newEngagementServiceForTest()

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(ownTemplate, nil).Once()
		mockEngagementRepo.On("GetFavorite", mock.Anything, "u1", "tpl1", "").Return(nil, repository.ErrNotFound).Once()
		mockEngagementRepo.On("CreateFavorite", mock.Anything, mock.MatchedBy(func(favorite *domain.TemplateFavorite) bool {
			return favorite.UserID == "u1" && favorite.TemplateID == "tpl1" && favorite.TeamID == ""
		})).Return(nil).Once()

		favorite, err := service.AddFavorite(context.Background(), testIdentity, "tpl1", "")

		require.NoError(t, err)
		assert.Empty(t, favorite.TeamID)
		mockEngagementRepo.AssertExpectations(t)
	})

	t.Run("командное избранное требует членства", func(t *testing.T) {
		service, _, _, mockTemplateRepo, _, mockTeamRepo := newEngagementServiceForTest()

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(ownTemplate, nil).Once()
		mockTeamRepo.On("GetMembership", mock.Anything, "t1", "u1").Return(nil, repository.ErrNotFound).Once()

		_, err := service.AddFavorite(context.Background(), testIdentity, "tpl1", "t1")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("ошибка: уже в избранном в этом контексте", func(t *testing.T) {
		service, mockEngagementRepo, _, mockTemplateRepo, _, _ := newEngagementServiceForTest()

		existing := &domain.TemplateFavorite{ID: "f1", UserID: "u1", TemplateID: "tpl1"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(ownTemplate, nil).Once()
		mockEngagementRepo.On("GetFavorite", mock.Anything, "u1", "tpl1", "").Return(existing, nil).Once()

		_, err := service.AddFavorite(context.Background(), testIdentity, "tpl1", "")

		assert.ErrorIs(t, err, domain.ErrConflict)
		mockEngagementRepo.AssertNotCalled(t, "CreateFavorite")
	})
}

func TestEngagementService_RemoveFavorite(t *testing.T) {
	t.Run("удаление командного избранного", func(t *testing.T) {
		service, mockEngagementRepo, _, _, _, _ := newEngagementServiceForTest()

		mockEngagementRepo.On("DeleteFavorite", mock.Anything, "u1", "tpl1", "t1").Return(nil).Once()

		err := service.RemoveFavorite(context.Background(), testIdentity, "tpl1", "t1")

		require.NoError(t, err)
		mockEngagementRepo.AssertExpectations(t)
	})

	t.Run("командный запрос откатывается на личное избранное", func(t *testing.T) {
		service, mockEngagementRepo, _, _, _, _ := newEngagementServiceForTest()

		mockEngagementRepo.On("DeleteFavorite", mock.Anything, "u1", "tpl1", "t1").Return(repository.ErrNotFound).Once()
		mockEngagementRepo.On("DeleteFavorite", mock.Anything, "u1", "tpl1", "").Return(nil).Once()

		err := service.RemoveFavorite(context.Background(), testIdentity, "tpl1", "t1")

		require.NoError(t, err)
		mockEngagementRepo.AssertExpectations(t)
	})

	t.Run("ошибка: нет ни командного, ни личного избранного", func(t *testing.T) {
		service, mockEngagementRepo, _, _, _, _ := newEngagementServiceForTest()

		mockEngagementRepo.On("DeleteFavorite", mock.Anything, "u1", "tpl1", "t1").Return(repository.ErrNotFound).Once()
		mockEngagementRepo.On("DeleteFavorite", mock.Anything, "u1", "tpl1", "").Return(repository.ErrNotFound).Once()

		err := service.RemoveFavorite(context.Background(), testIdentity, "tpl1", "t1")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ошибка: личный запрос без отката", func(t *testing.T) {
		service, mockEngagementRepo, _, _, _, _ := newEngagementServiceForTest()

		mockEngagementRepo.On("DeleteFavorite", mock.Anything, "u1", "tpl1", "").Return(repository.ErrNotFound).Once()

		err := service.RemoveFavorite(context.Background(), testIdentity, "tpl1", "")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockEngagementRepo.AssertNumberOfCalls(t, "DeleteFavorite", 1)
	})
}

func TestEngagementService_AddFeedback(t *testing.T) {
	ownTemplate := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1"}

	t.Run("успешный отзыв с оценкой", func(t *testing.T) {
		service, mockEngagementRepo, _, mockTemplateRepo, _, _ := newEngagementServiceForTest()

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(ownTemplate, nil).Once()
		mockEngagementRepo.On("GetFeedback", mock.Anything, "u1", "tpl1", "").Return(nil, repository.ErrNotFound).Once()
		mockEngagementRepo.On("CreateFeedback", mock.Anything, mock.MatchedBy(func(feedback *domain.TemplateFeedback) bool {
			return feedback.Comment == "Отличный чеклист" && feedback.Rating != nil && *feedback.Rating == 5
		})).Return(nil).Once()

		feedback, err := service.AddFeedback(context.Background(), testIdentity, FeedbackInput{
			TemplateID: "tpl1",
			Comment:    "  Отличный чеклист  ",
			Rating:     intPtr(5),
		})

		require.NoError(t, err)
		assert.Equal(t, "Отличный чеклист", feedback.Comment)
	})

	t.Run("ошибка: пустой комментарий", func(t *testing.T) {
		service, _, _, _, _, _ := newEngagementServiceForTest()

		_, err := service.AddFeedback(context.Background(), testIdentity, FeedbackInput{TemplateID: "tpl1", Comment: "   "})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ошибка: оценка вне диапазона", func(t *testing.T) {
		service, _, _, _, _, _ := newEngagementServiceForTest()

		_, err := service.AddFeedback(context.Background(), testIdentity, FeedbackInput{
			TemplateID: "tpl1",
			Comment:    "Комментарий",
			Rating:     intPtr(6),
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ошибка: повторный отзыв в том же контексте", func(t *testing.T) {
		service, mockEngagementRepo, _, mockTemplateRepo, _, _ := newEngagementServiceForTest()

		existing := &domain.TemplateFeedback{ID: "fb1"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(ownTemplate, nil).Once()
		mockEngagementRepo.On("GetFeedback", mock.Anything, "u1", "tpl1", "").Return(existing, nil).Once()

		_, err := service.AddFeedback(context.Background(), testIdentity, FeedbackInput{TemplateID: "tpl1", Comment: "Еще раз"})

		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestEngagementService_TemplateStats(t *testing.T) {
	t.Run("статистика видимого шаблона", func(t *testing.T) {
		service, _, mockStatsRepo, mockTemplateRepo, _, _ := newEngagementServiceForTest()

		ownTemplate := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1"}
		average := 4.5
		stats := &domain.TemplateStats{TemplateID: "tpl1", FavoriteCount: 3, FeedbackCount: 2, AverageRating: &average}

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(ownTemplate, nil).Once()
		mockStatsRepo.On("GetTemplateStats", mock.Anything, "tpl1").Return(stats, nil).Once()

		result, err := service.TemplateStats(context.Background(), testIdentity, "tpl1")

		require.NoError(t, err)
		assert.Equal(t, 3, result.FavoriteCount)
		assert.Equal(t, 4.5, *result.AverageRating)
	})

	t.Run("ошибка: невидимый шаблон не раскрывается", func(t *testing.T) {
		service, _, _, mockTemplateRepo, mockSharingRepo, _ := newEngagementServiceForTest()

		foreign := &domain.ChecklistTemplate{ID: "tpl1", UserID: "other"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(foreign, nil).Once()
		mockSharingRepo.On("HasActiveShareForUser", mock.Anything, "tpl1", "u1").Return(false, nil).Once()

		_, err := service.TemplateStats(context.Background(), testIdentity, "tpl1")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
