package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

func (h *Handler) ShareTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req ShareTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	share, err := h.sharingService.Share(r.Context(), identity, r.PathValue("id"), req.TemplateID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainShareToHTTP(share))
}

func (h *Handler) ListTeamTemplates(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	shares, err := h.sharingService.ListTeamTemplates(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]SharedTemplateResponse, 0, len(shares))
	for _, share := range shares {
		result = append(result, domainShareToHTTP(share))
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) UnshareTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.sharingService.Unshare(r.Context(), identity, r.PathValue("id"), r.PathValue("templateId")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetTemplateOfficial(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req SetOfficialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	share, err := h.sharingService.SetOfficial(r.Context(), identity, r.PathValue("id"), r.PathValue("templateId"), *req.IsOfficial)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainShareToHTTP(share))
}
