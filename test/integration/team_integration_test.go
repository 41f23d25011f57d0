//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/notifier"
	"github.com/bagdasarian/team-checklist/internal/repository/postgres"
	"github.com/bagdasarian/team-checklist/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestTeamInvitationSharingIntegration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	log := zap.NewNop().Sugar()

	userRepo := postgres.NewUserRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	sharingRepo := postgres.NewSharingRepository(db)
	engagementRepo := postgres.NewEngagementRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	authService := service.NewAuthService(userRepo, "integration-secret", bcrypt.MinCost)
	templateService := service.NewTemplateService(templateRepo, sharingRepo)
	teamService := service.NewTeamService(teamRepo, invitationRepo)
	invitationService := service.NewInvitationService(invitationRepo, teamRepo, userRepo, notifier.NewLogSender(log), "http://localhost:8080", log)
	sharingService := service.NewSharingService(sharingRepo, templateRepo, teamRepo)
	engagementService := service.NewEngagementService(engagementRepo, statsRepo, templateRepo, sharingRepo, teamRepo)

	alice, err := authService.Signup(ctx, "alice@example.com", "password123", "Alice")
	require.NoError(t, err)
	bob, err := authService.Signup(ctx, "bob@example.com", "password123", "Bob")
	require.NoError(t, err)

	aliceIdentity := domain.Identity{UserID: alice.ID, Email: alice.Email, Name: alice.Name}
	bobIdentity := domain.Identity{UserID: bob.ID, Email: bob.Email, Name: bob.Name}

	// Команда создаётся вместе с owner-членством
	team, err := teamService.Create(ctx, aliceIdentity, "Backend", "команда бэкенда", domain.PrivacyPrivate)
	require.NoError(t, err)

	detail, err := teamService.Get(ctx, aliceIdentity, team.ID)
	require.NoError(t, err)
	require.Len(t, detail.Members, 1)
	assert.Equal(t, domain.RoleOwner, detail.Members[0].Role)

	// Дубликат имени у того же владельца отклоняется
	_, err = teamService.Create(ctx, aliceIdentity, "Backend", "", domain.PrivacyPrivate)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Приглашаем Боба и принимаем приглашение по токену
	invitation, err := invitationService.Create(ctx, aliceIdentity, team.ID, "bob@example.com")
	require.NoError(t, err)
	assert.Len(t, invitation.Token, 64)

	// Повторное pending-приглашение на тот же email отклоняется
	_, err = invitationService.Create(ctx, aliceIdentity, team.ID, "bob@example.com")
	assert.ErrorIs(t, err, domain.ErrConflict)

	accepted, err := invitationService.Respond(ctx, bobIdentity, invitation.Token, service.InvitationAccept)
	require.NoError(t, err)
	assert.Equal(t, domain.InvitationAccepted, accepted.Status)

	detail, err = teamService.Get(ctx, bobIdentity, team.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Members, 2)
	assert.Equal(t, domain.RoleMember, detail.CallerRole)

	// Повторный ответ на уже принятое приглашение отклоняется
	_, err = invitationService.Respond(ctx, bobIdentity, invitation.Token, service.InvitationAccept)
	assert.ErrorIs(t, err, domain.ErrValidation)

	// Алиса делится шаблоном с командой, Бобу он становится виден
	template, _, err := templateService.Create(ctx, aliceIdentity, "Релиз", []string{"Собрать", "Выкатить"})
	require.NoError(t, err)

	_, _, err = templateService.Get(ctx, bobIdentity, template.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	share, err := sharingService.Share(ctx, aliceIdentity, team.ID, template.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShareActive, share.Status)

	_, _, err = templateService.Get(ctx, bobIdentity, template.ID)
	require.NoError(t, err)

	// Боб добавляет шаблон в избранное и оставляет отзыв
	_, err = engagementService.AddFavorite(ctx, bobIdentity, template.ID, "")
	require.NoError(t, err)

	rating := 5
	_, err = engagementService.AddFeedback(ctx, bobIdentity, service.FeedbackInput{
		TemplateID: template.ID,
		Comment:    "Отличный чеклист",
		Rating:     &rating,
	})
	require.NoError(t, err)

	stats, err := engagementService.TemplateStats(ctx, aliceIdentity, template.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FavoriteCount)
	assert.Equal(t, 1, stats.FeedbackCount)
	require.NotNil(t, stats.AverageRating)
	assert.InDelta(t, 5.0, *stats.AverageRating, 0.01)

	// Снятие шаринга мягкое: запись остаётся, видимость исчезает
	err = sharingService.Unshare(ctx, aliceIdentity, team.ID, template.ID)
	require.NoError(t, err)

	_, _, err = templateService.Get(ctx, bobIdentity, template.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Владелец удаляет Боба из команды
	err = teamService.RemoveMember(ctx, aliceIdentity, team.ID, bob.ID)
	require.NoError(t, err)

	_, err = teamService.Get(ctx, bobIdentity, team.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
