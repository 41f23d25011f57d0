package handler

import (
	"github.com/bagdasarian/team-checklist/internal/service"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Handler struct {
	authService       service.AuthService
	templateService   service.TemplateService
	instanceService   service.InstanceService
	teamService       service.TeamService
	invitationService service.InvitationService
	sharingService    service.SharingService
	engagementService service.EngagementService
	validate          *validator.Validate
	log               *zap.SugaredLogger
}

func NewHandler(
	authService service.AuthService,
	templateService service.TemplateService,
	instanceService service.InstanceService,
	teamService service.TeamService,
	invitationService service.InvitationService,
	sharingService service.SharingService,
	engagementService service.EngagementService,
	log *zap.SugaredLogger,
) *Handler {
	return &Handler{
		authService:       authService,
		templateService:   templateService,
		instanceService:   instanceService,
		teamService:       teamService,
		invitationService: invitationService,
		sharingService:    sharingService,
		engagementService: engagementService,
		validate:          validator.New(),
		log:               log,
	}
}
