package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/team-checklist/internal/config"
	"github.com/bagdasarian/team-checklist/internal/db"
	"github.com/bagdasarian/team-checklist/internal/handler"
	"github.com/bagdasarian/team-checklist/internal/handler/server"
	"github.com/bagdasarian/team-checklist/internal/logger"
	"github.com/bagdasarian/team-checklist/internal/notifier"
	"github.com/bagdasarian/team-checklist/internal/repository/postgres"
	"github.com/bagdasarian/team-checklist/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.App.Env)
	defer log.Sync()

	database := db.MustLoad(cfg)
	log.Info("successfully connected to database")
	defer database.Close()

	userRepo := postgres.NewUserRepository(database)
	templateRepo := postgres.NewTemplateRepository(database)
	instanceRepo := postgres.NewInstanceRepository(database)
	teamRepo := postgres.NewTeamRepository(database)
	invitationRepo := postgres.NewInvitationRepository(database)
	sharingRepo := postgres.NewSharingRepository(database)
	engagementRepo := postgres.NewEngagementRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	sender := notifier.NewLogSender(log)

	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.BcryptCost)
	templateService := service.NewTemplateService(templateRepo, sharingRepo)
	instanceService := service.NewInstanceService(instanceRepo, templateRepo)
	teamService := service.NewTeamService(teamRepo, invitationRepo)
	invitationService := service.NewInvitationService(invitationRepo, teamRepo, userRepo, sender, cfg.App.BaseURL, log)
	sharingService := service.NewSharingService(sharingRepo, templateRepo, teamRepo)
	engagementService := service.NewEngagementService(engagementRepo, statsRepo, templateRepo, sharingRepo, teamRepo)

	h := handler.NewHandler(
		authService,
		templateService,
		instanceService,
		teamService,
		invitationService,
		sharingService,
		engagementService,
		log,
	)
	srv := server.NewServer(h, cfg.HTTP.Addr, cfg.Auth.JWTSecret, log)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}
}
