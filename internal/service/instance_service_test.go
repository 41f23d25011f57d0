package service

import (
	"context"
	"testing"
	"time"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testIdentity = domain.Identity{UserID: "u1", Email: "alice@example.com", Name: "Alice"}

func TestInstanceService_Start(t *testing.T) {
	t.Run("успешный запуск: по шагу экземпляра на каждый шаг шаблона", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)
		ctx := context.Background()

		template := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1", Title: "Релиз"}
		templateSteps := []*domain.ChecklistStep{
			{ID: "s1", TemplateID: "tpl1", StepText: "Собрать образ", OrderIndex: 0},
			{ID: "s2", TemplateID: "tpl1", StepText: "Прогнать тесты", OrderIndex: 1},
			{ID: "s3", TemplateID: "tpl1", StepText: "Выкатить", OrderIndex: 2},
		}

		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(template, nil).Once()
		mockTemplateRepo.On("GetSteps", mock.Anything, "tpl1").Return(templateSteps, nil).Once()
		mockInstanceRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(steps []*domain.InstanceStep) bool {
			if len(steps) != 3 {
				return false
			}
			for i, step := range steps {
				if step.StepID != templateSteps[i].ID || step.IsCompleted {
					return false
				}
			}
			return true
		})).Return(nil).Once()

		instance, err := service.Start(ctx, testIdentity, "tpl1")

		require.NoError(t, err)
		assert.Equal(t, "tpl1", instance.TemplateID)
		assert.Equal(t, "u1", instance.UserID)
		assert.Equal(t, domain.InstanceInProgress, instance.Status)
		mockTemplateRepo.AssertExpectations(t)
		mockInstanceRepo.AssertExpectations(t)
	})

	t.Run("шаблон без шагов: экземпляр создается пустым", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		template := &domain.ChecklistTemplate{ID: "tpl1", UserID: "u1"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(template, nil).Once()
		mockTemplateRepo.On("GetSteps", mock.Anything, "tpl1").Return([]*domain.ChecklistStep{}, nil).Once()
		mockInstanceRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(steps []*domain.InstanceStep) bool {
			return len(steps) == 0
		})).Return(nil).Once()

		_, err := service.Start(context.Background(), testIdentity, "tpl1")

		require.NoError(t, err)
		mockInstanceRepo.AssertExpectations(t)
	})

	t.Run("ошибка: чужой шаблон неотличим от несуществующего", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		template := &domain.ChecklistTemplate{ID: "tpl1", UserID: "other"}
		mockTemplateRepo.On("GetByID", mock.Anything, "tpl1").Return(template, nil).Once()

		_, err := service.Start(context.Background(), testIdentity, "tpl1")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockInstanceRepo.AssertNotCalled(t, "Create")
	})

	t.Run("ошибка: шаблон не найден", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		mockTemplateRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := service.Start(context.Background(), testIdentity, "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInstanceService_SetStepCompletion(t *testing.T) {
	owned := &domain.ChecklistInstance{ID: "inst1", UserID: "u1", Status: domain.InstanceInProgress}

	t.Run("отметка шага проставляет completed_at", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		completedAt := time.Now()
		updated := &domain.InstanceStep{ID: "is1", InstanceID: "inst1", StepID: "s1", IsCompleted: true, CompletedAt: &completedAt}

		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(owned, nil).Once()
		mockInstanceRepo.On("SetStepCompletion", mock.Anything, "inst1", "s1", true, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil
		})).Return(updated, nil).Once()

		step, err := service.SetStepCompletion(context.Background(), testIdentity, "inst1", "s1", true)

		require.NoError(t, err)
		assert.True(t, step.IsCompleted)
		assert.NotNil(t, step.CompletedAt)
		mockInstanceRepo.AssertExpectations(t)
	})

	t.Run("снятие отметки сбрасывает completed_at", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		updated := &domain.InstanceStep{ID: "is1", InstanceID: "inst1", StepID: "s1", IsCompleted: false}

		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(owned, nil).Once()
		mockInstanceRepo.On("SetStepCompletion", mock.Anything, "inst1", "s1", false, (*time.Time)(nil)).
			Return(updated, nil).Once()

		step, err := service.SetStepCompletion(context.Background(), testIdentity, "inst1", "s1", false)

		require.NoError(t, err)
		assert.False(t, step.IsCompleted)
		assert.Nil(t, step.CompletedAt)
	})

	t.Run("ошибка: шаг не принадлежит экземпляру", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(owned, nil).Once()
		mockInstanceRepo.On("SetStepCompletion", mock.Anything, "inst1", "stranger", true, mock.Anything).
			Return(nil, repository.ErrNotFound).Once()

		_, err := service.SetStepCompletion(context.Background(), testIdentity, "inst1", "stranger", true)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ошибка: чужой экземпляр дает NotFound", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		foreign := &domain.ChecklistInstance{ID: "inst1", UserID: "other"}
		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(foreign, nil).Once()

		_, err := service.SetStepCompletion(context.Background(), testIdentity, "inst1", "s1", true)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockInstanceRepo.AssertNotCalled(t, "SetStepCompletion")
	})
}

func TestInstanceService_Complete(t *testing.T) {
	t.Run("завершение не требует выполнения всех шагов", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		owned := &domain.ChecklistInstance{ID: "inst1", UserID: "u1", Status: domain.InstanceInProgress}
		completedAt := time.Now()
		completed := &domain.ChecklistInstance{ID: "inst1", UserID: "u1", Status: domain.InstanceCompleted, CompletedAt: &completedAt}

		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(owned, nil).Once()
		mockInstanceRepo.On("Complete", mock.Anything, "inst1", mock.Anything).Return(completed, nil).Once()

		instance, err := service.Complete(context.Background(), testIdentity, "inst1")

		require.NoError(t, err)
		assert.Equal(t, domain.InstanceCompleted, instance.Status)
		assert.NotNil(t, instance.CompletedAt)
	})

	t.Run("повторное завершение обновляет completed_at", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		already := &domain.ChecklistInstance{ID: "inst1", UserID: "u1", Status: domain.InstanceCompleted}
		later := time.Now()
		refreshed := &domain.ChecklistInstance{ID: "inst1", UserID: "u1", Status: domain.InstanceCompleted, CompletedAt: &later}

		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(already, nil).Once()
		mockInstanceRepo.On("Complete", mock.Anything, "inst1", mock.Anything).Return(refreshed, nil).Once()

		instance, err := service.Complete(context.Background(), testIdentity, "inst1")

		require.NoError(t, err)
		assert.Equal(t, &later, instance.CompletedAt)
	})
}

func TestInstanceService_Get(t *testing.T) {
	t.Run("возвращает шаги с прогрессом", func(t *testing.T) {
		mockInstanceRepo := new(MockInstanceRepository)
		mockTemplateRepo := new(MockTemplateRepository)
		service := NewInstanceService(mockInstanceRepo, mockTemplateRepo)

		owned := &domain.ChecklistInstance{ID: "inst1", UserID: "u1"}
		instanceSteps := []*domain.InstanceStep{
			{ID: "is1", StepID: "s1", IsCompleted: true},
			{ID: "is2", StepID: "s2", IsCompleted: false},
		}

		mockInstanceRepo.On("GetByID", mock.Anything, "inst1").Return(owned, nil).Once()
		mockInstanceRepo.On("GetSteps", mock.Anything, "inst1").Return(instanceSteps, nil).Once()

		instance, steps, progress, err := service.Get(context.Background(), testIdentity, "inst1")

		require.NoError(t, err)
		assert.Equal(t, "inst1", instance.ID)
		assert.Len(t, steps, 2)
		assert.Equal(t, 2, progress.TotalSteps)
		assert.Equal(t, 1, progress.CompletedSteps)
		assert.Equal(t, 50, progress.Progress)
	})
}
