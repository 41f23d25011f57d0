package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/service"
)

func (h *Handler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	invitation, err := h.invitationService.Create(r.Context(), identity, r.PathValue("id"), req.Email)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainInvitationToHTTP(invitation))
}

func (h *Handler) ListInvitations(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	invitations, err := h.invitationService.List(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]InvitationResponse, 0, len(invitations))
	for _, invitation := range invitations {
		result = append(result, domainInvitationToHTTP(invitation))
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) CancelInvitation(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.invitationService.Cancel(r.Context(), identity, r.PathValue("id"), r.PathValue("invitationId")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ResendInvitation(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.invitationService.Resend(r.Context(), identity, r.PathValue("id"), r.PathValue("invitationId")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetInvitation - публичное чтение по токену, без аутентификации
func (h *Handler) GetInvitation(w http.ResponseWriter, r *http.Request) {
	invitation, err := h.invitationService.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, InvitationDetailResponse{
		TeamName:        invitation.TeamName,
		TeamDescription: invitation.TeamDescription,
		InviterName:     invitation.InviterName,
		Email:           invitation.InvitedEmail,
		Status:          string(invitation.Status),
		ExpiresAt:       formatTime(invitation.ExpiresAt),
	})
}

func (h *Handler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req RespondInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	invitation, err := h.invitationService.Respond(r.Context(), identity, r.PathValue("token"), service.InvitationAction(req.Action))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainInvitationToHTTP(invitation))
}
