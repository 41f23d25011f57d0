package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-checklist/internal/domain"
)

func (h *Handler) StartInstance(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req StartInstanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	instance, err := h.instanceService.Start(r.Context(), identity, req.TemplateID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, domainInstanceToHTTP(instance))
}

func (h *Handler) GetInstance(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	instance, steps, progress, err := h.instanceService.Get(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	resp := domainInstanceToHTTP(instance)
	resp.Steps = domainInstanceStepsToHTTP(steps)
	resp.Progress = domainProgressToHTTP(progress)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ListInstances(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	instances, err := h.instanceService.List(r.Context(), identity)
	if err != nil {
		h.handleError(w, err)
		return
	}

	result := make([]InstanceResponse, 0, len(instances))
	for _, item := range instances {
		resp := domainInstanceToHTTP(item.Instance)
		resp.Progress = domainProgressToHTTP(item.Progress)
		result = append(result, resp)
	}
	h.writeJSON(w, http.StatusOK, result)
}

// UpdateInstance принимает единственное действие "complete"
func (h *Handler) UpdateInstance(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req UpdateInstanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	instance, err := h.instanceService.Complete(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainInstanceToHTTP(instance))
}

func (h *Handler) SetStepCompletion(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	var req SetStepCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.handleError(w, err)
		return
	}

	step, err := h.instanceService.SetStepCompletion(r.Context(), identity, r.PathValue("id"), r.PathValue("stepId"), *req.IsCompleted)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, InstanceStepResponse{
		StepID:      step.StepID,
		StepText:    step.StepText,
		OrderIndex:  step.OrderIndex,
		IsCompleted: step.IsCompleted,
		CompletedAt: formatTimePtr(step.CompletedAt),
	})
}
