package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	team, err := h.teamService.Create(r.Context(), identity, req.Name, req.Description, domain.PrivacyLevel(req.PrivacyLevel))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainTeamToHTTP(team))
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	teams, err := h.teamService.List(r.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]TeamSummaryResponse, 0, len(teams))
	for _, summary := range teams {
		result = append(result, TeamSummaryResponse{
			Team: domainTeamToHTTP(summary.Team),
			Role: string(summary.Role),
		})
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	detail, err := h.teamService.Get(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TeamDetailResponse{
		Team:               domainTeamToHTTP(detail.Team),
		Members:            domainMembersToHTTP(detail.Members),
		MemberCount:        len(detail.Members),
		PendingInvitations: detail.PendingInvitations,
		CallerRole:         string(detail.CallerRole),
	})
}

func (h *Handler) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), identity, r.PathValue("id"), r.PathValue("userId")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateTeamMemberRole(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req UpdateMemberRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.teamService.UpdateMemberRole(r.Context(), identity, r.PathValue("id"), r.PathValue("userId"), domain.Role(req.Role)); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
