//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/repository/postgres"
	"github.com/bagdasarian/team-checklist/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestChecklistFlowIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := postgres.NewUserRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	instanceRepo := postgres.NewInstanceRepository(db)
	sharingRepo := postgres.NewSharingRepository(db)

	authService := service.NewAuthService(userRepo, "integration-secret", bcrypt.MinCost)
	templateService := service.NewTemplateService(templateRepo, sharingRepo)
	instanceService := service.NewInstanceService(instanceRepo, templateRepo)

	// Регистрируем пользователя
	user, err := authService.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	identity := domain.Identity{UserID: user.ID, Email: user.Email, Name: user.Name}

	// Создаём шаблон с тремя шагами
	template, steps, err := templateService.Create(ctx, identity, "Релиз сервиса", []string{
		"Собрать образ",
		"Прогнать тесты",
		"Выкатить в прод",
	})
	require.NoError(t, err)
	require.Len(t, steps, 3)

	// Запускаем экземпляр: на каждый шаг шаблона создаётся шаг экземпляра
	instance, err := instanceService.Start(ctx, identity, template.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceInProgress, instance.Status)

	_, instanceSteps, progress, err := instanceService.Get(ctx, identity, instance.ID)
	require.NoError(t, err)
	require.Len(t, instanceSteps, 3)
	assert.Equal(t, 0, progress.Progress)

	// Отмечаем первый шаг: прогресс 1/3 округляется до 33
	step, err := instanceService.SetStepCompletion(ctx, identity, instance.ID, steps[0].ID, true)
	require.NoError(t, err)
	assert.True(t, step.IsCompleted)
	require.NotNil(t, step.CompletedAt)

	_, _, progress, err = instanceService.Get(ctx, identity, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, progress.Progress)
	assert.Equal(t, 1, progress.CompletedSteps)

	// Снимаем отметку: прогресс возвращается к нулю
	step, err = instanceService.SetStepCompletion(ctx, identity, instance.ID, steps[0].ID, false)
	require.NoError(t, err)
	assert.False(t, step.IsCompleted)
	assert.Nil(t, step.CompletedAt)

	_, _, progress, err = instanceService.Get(ctx, identity, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, progress.Progress)

	// Завершение не требует выполнения всех шагов
	completed, err := instanceService.Complete(ctx, identity, instance.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InstanceCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// Повторное завершение обновляет completed_at
	first := *completed.CompletedAt
	completed, err = instanceService.Complete(ctx, identity, instance.ID)
	require.NoError(t, err)
	assert.False(t, completed.CompletedAt.Before(first))

	// Список экземпляров содержит запущенный с его прогрессом
	list, err := instanceService.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, instance.ID, list[0].Instance.ID)
}

func TestTemplateVisibilityIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userRepo := postgres.NewUserRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	instanceRepo := postgres.NewInstanceRepository(db)
	sharingRepo := postgres.NewSharingRepository(db)

	authService := service.NewAuthService(userRepo, "integration-secret", bcrypt.MinCost)
	templateService := service.NewTemplateService(templateRepo, sharingRepo)
	instanceService := service.NewInstanceService(instanceRepo, templateRepo)

	alice, err := authService.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	bob, err := authService.Signup(ctx, "bob@example.com", "password123", "Bob")
	require.NoError(t, err)

	aliceIdentity := domain.Identity{UserID: alice.ID, Email: alice.Email}
	bobIdentity := domain.Identity{UserID: bob.ID, Email: bob.Email}

	template, _, err := templateService.Create(ctx, aliceIdentity, "Онбординг", []string{"Доступы"})
	require.NoError(t, err)

	// Чужой шаблон неотличим от несуществующего
	_, _, err = templateService.Get(ctx, bobIdentity, template.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Шаринг не даёт права запуска экземпляра
	_, err = instanceService.Start(ctx, bobIdentity, template.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
