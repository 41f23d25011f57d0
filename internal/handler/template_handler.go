package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

func (h *Handler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	template, steps, err := h.templateService.Create(r.Context(), identity, req.Title, req.Steps)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainTemplateToHTTP(template, steps))
}

func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	template, steps, err := h.templateService.Get(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainTemplateToHTTP(template, steps))
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	templates, err := h.templateService.List(r.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]TemplateResponse, 0, len(templates))
	for _, template := range templates {
		result = append(result, domainTemplateToHTTP(template, nil))
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	template, steps, err := h.templateService.Update(r.Context(), identity, r.PathValue("id"), req.Title, req.Steps)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainTemplateToHTTP(template, steps))
}

func (h *Handler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	if err := h.templateService.Delete(r.Context(), identity, r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
