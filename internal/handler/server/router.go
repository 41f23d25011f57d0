package server

import (
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler, jwtSecret string) {
	auth := handler.AuthMiddleware(jwtSecret)
	protected := func(hf http.HandlerFunc) http.Handler {
		return auth(hf)
	}

	mux.HandleFunc("POST /auth/signup", h.Signup)
	mux.HandleFunc("POST /auth/login", h.Login)

	mux.Handle("GET /templates", protected(h.ListTemplates))
	mux.Handle("POST /templates", protected(h.CreateTemplate))
	mux.Handle("GET /templates/favorites", protected(h.ListFavorites))
	mux.Handle("GET /templates/{id}", protected(h.GetTemplate))
	mux.Handle("PUT /templates/{id}", protected(h.UpdateTemplate))
	mux.Handle("DELETE /templates/{id}", protected(h.DeleteTemplate))
	mux.Handle("GET /templates/{id}/stats", protected(h.GetTemplateStats))
	mux.Handle("POST /templates/{id}/favorite", protected(h.AddFavorite))
	mux.Handle("DELETE /templates/{id}/favorite", protected(h.RemoveFavorite))
	mux.Handle("GET /templates/{id}/feedback", protected(h.ListFeedback))
	mux.Handle("POST /templates/{id}/feedback", protected(h.AddFeedback))

	mux.Handle("GET /checklists", protected(h.ListInstances))
	mux.Handle("POST /checklists", protected(h.StartInstance))
	mux.Handle("GET /checklists/{id}", protected(h.GetInstance))
	mux.Handle("PUT /checklists/{id}", protected(h.UpdateInstance))
	mux.Handle("PUT /checklists/{id}/steps/{stepId}", protected(h.SetStepCompletion))

	mux.Handle("GET /teams", protected(h.ListTeams))
	mux.Handle("POST /teams", protected(h.CreateTeam))
	mux.Handle("GET /teams/{id}", protected(h.GetTeam))
	mux.Handle("DELETE /teams/{id}/members/{userId}", protected(h.RemoveTeamMember))
	mux.Handle("PUT /teams/{id}/members/{userId}", protected(h.UpdateTeamMemberRole))

	mux.Handle("POST /teams/{id}/invite", protected(h.CreateInvitation))
	mux.Handle("GET /teams/{id}/invitations", protected(h.ListInvitations))
	mux.Handle("DELETE /teams/{id}/invitations/{invitationId}", protected(h.CancelInvitation))
	mux.Handle("POST /teams/{id}/invitations/{invitationId}/resend", protected(h.ResendInvitation))

	// чтение по токену публичное: приглашенный еще может не иметь аккаунта
	mux.HandleFunc("GET /invitations/{token}", h.GetInvitation)
	mux.Handle("POST /invitations/{token}", protected(h.RespondInvitation))

	mux.Handle("GET /teams/{id}/templates", protected(h.ListTeamTemplates))
	mux.Handle("POST /teams/{id}/templates", protected(h.ShareTemplate))
	mux.Handle("DELETE /teams/{id}/templates/{templateId}", protected(h.UnshareTemplate))
	mux.Handle("PUT /teams/{id}/templates/{templateId}/official", protected(h.SetTemplateOfficial))
}
