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

func TestTemplateService_Create(t *testing.T) {
	t.Run("успешное создание шаблона с шагами", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewTemplateService(mockTemplateRepo, new(MockSharingRepository))

		mockTemplateRepo.On("Create", mock.Anything, mock.MatchedBy(func(template *domain.ChecklistTemplate) bool {
			return template.Title == "Онбординг" && template.UserID == "u1"
		}), mock.MatchedBy(func(steps []*domain.ChecklistStep) bool {
			return len(steps) == 2 && steps[0].OrderIndex == 0 && steps[1].OrderIndex == 1
		})).Return(nil).Once()

		template, steps, err := service.Create(context.Background(), testIdentity, "Онбординг", []string{" Доступы ", "Встреча с командой"})

		require.NoError(t, err)
		assert.Equal(t, "Онбординг", template.Title)
		require.Len(t, steps, 2)
		assert.Equal(t, "Доступы", steps[0].StepText)
	})

	t.Run("ошибка: шаблон без шагов", func(t *testing.T) {
		service := NewTemplateService(new(MockTemplateRepository), new(MockSharingRepository))

		_, _, err := service.Create(context.Background(), testIdentity, "Онбординг", nil)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ошибка: пустой текст шага", func(t *testing.T) {
		service := NewTemplateService(new(MockTemplateRepository), new(MockSharingRepository))

		_, _, err := service.Create(context.Background(), testIdentity, "Онбординг", []string{"Доступы", "   "})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "step 2")
	})
}

func TestTemplateService_Get(t *testing.T) {
	template := &domain.ChecklistTemplate{ID: "tpl1", UserID: "owner", Title: "Релиз"}

	t.Run("владелец видит свой шаблон", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		mockSharingRepo := new(MockSharingRepository)
		service := NewTemplateService(mockTemplateRepo, mockSharingRepo)

		own := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1", Title: "Релиз"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(own, nil).Once()
		mockTemplateRepo.On("GetSteps", mock.Anything, "tpl1").Return([]*domain.ChecklistStep{}, nil).Once()

		_, _, err := service.Get(context.Background(), testIdentity, "tpl1")

		require.NoError(t, err)
		mockSharingRepo.AssertNotCalled(t, "HasActiveShareForUser")
	})

	t.Run("чужой шаблон виден через активный шаринг", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		mockSharingRepo := new(MockSharingRepository)
		service := NewTemplateService(mockTemplateRepo, mockSharingRepo)

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(template, nil).Once()
		mockSharingRepo.On("HasActiveShareForUser", mock.Anything, "tpl1", "u1").Return(true, nil).Once()
		mockTemplateRepo.On("GetSteps", mock.Anything, "tpl1").Return([]*domain.ChecklistStep{}, nil).Once()

		_, _, err := service.Get(context.Background(), testIdentity, "tpl1")

		require.NoError(t, err)
	})

	t.Run("ошибка: без шаринга чужой шаблон не существует", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		mockSharingRepo := new(MockSharingRepository)
		service := NewTemplateService(mockTemplateRepo, mockSharingRepo)

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(template, nil).Once()
		mockSharingRepo.On("HasActiveShareForUser", mock.Anything, "tpl1", "u1").Return(false, nil).Once()

		_, _, err := service.Get(context.Background(), testIdentity, "tpl1")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTemplateService_Update(t *testing.T) {
	t.Run("обновление целиком заменяет шаги", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewTemplateService(mockTemplateRepo, new(MockSharingRepository))

		own := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1", Title: "Старое имя"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(own, nil).Once()
		mockTemplateRepo.On("Update", mock.Anything, mock.MatchedBy(func(template *domain.ChecklistTemplate) bool {
			return template.Title == "Новое имя"
		}), mock.MatchedBy(func(steps []*domain.ChecklistStep) bool {
			return len(steps) == 1 && steps[0].TemplateID == "tpl1"
		})).Return(nil).Once()

		template, steps, err := service.Update(context.Background(), testIdentity, "tpl1", "Новое имя", []string{"Единственный шаг"})

		require.NoError(t, err)
		assert.Equal(t, "Новое имя", template.Title)
		assert.Len(t, steps, 1)
	})

	t.Run("ошибка: чужой шаблон не редактируется", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewTemplateService(mockTemplateRepo, new(MockSharingRepository))

		foreign := &domain.ChecklistTemplate{ID: "tpl1", UserID: "other"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(foreign, nil).Once()

		_, _, err := service.Update(context.Background(), testIdentity, "tpl1", "Имя", []string{"Шаг"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockTemplateRepo.AssertNotCalled(t, "Update")
	})
}

func TestTemplateService_Delete(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewTemplateService(mockTemplateRepo, new(MockSharingRepository))

		own := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(own, nil).Once()
		mockTemplateRepo.On("Delete", mock.Anything, "tpl1").Return(nil).Once()

		err := service.Delete(context.Background(), testIdentity, "tpl1")

		require.NoError(t, err)
	})

	t.Run("ошибка: шаблон не найден", func(t *testing.T) {
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewTemplateService(mockTemplateRepo, new(MockSharingRepository))

		mockTemplateRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		err := service.Delete(context.Background(), testIdentity, "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
