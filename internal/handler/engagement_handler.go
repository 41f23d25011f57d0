package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/bagdasarian/team-checklist/internal/service"
)

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	// тело опционально: без него избранное личное
	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	favorite, err := h.engagementService.AddFavorite(r.Context(), identity, r.PathValue("id"), req.TeamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainFavoriteToHTTP(favorite))
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	teamID := r.URL.Query().Get("team_id")
	if err := h.engagementService.RemoveFavorite(r.Context(), identity, r.PathValue("id"), teamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	favorites, err := h.engagementService.ListFavorites(r.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		result = append(result, domainFavoriteToHTTP(favorite))
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	feedback, err := h.engagementService.AddFeedback(r.Context(), identity, service.FeedbackInput{
		TemplateID: r.PathValue("id"),
		TeamID:     req.TeamID,
		Comment:    req.Comment,
		Rating:     req.Rating,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainFeedbackToHTTP(feedback))
}

func (h *Handler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	feedback, err := h.engagementService.ListFeedback(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]FeedbackResponse, 0, len(feedback))
	for _, item := range feedback {
		result = append(result, domainFeedbackToHTTP(item))
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetTemplateStats(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	stats, err := h.engagementService.TemplateStats(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, TemplateStatsResponse{
		TemplateID:    stats.TemplateID,
		FavoriteCount: stats.FavoriteCount,
		FeedbackCount: stats.FeedbackCount,
		AverageRating: stats.AverageRating,
	})
}
