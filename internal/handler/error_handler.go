package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
	"github.com/go-playground/validator/v10"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, getStatusCode(domainErr.Code), domainErr.Message)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeError(w, http.StatusBadRequest, validationErrs.Error())
		return
	}

	// детали внутренних ошибок остаются в логе, не в ответе
	h.log.Errorw("request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "UNAUTHORIZED":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "VALIDATION", "EXPIRED":
		return http.StatusBadRequest
	case "CONFLICT":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Errorw("response encoding failed", "error", err)
	}
}
