package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// HRHandler обрабатывает запросы к сотрудникам
type HRHandler struct {
	base
	hrService service.HRService
}

// NewHRHandler создаёт новый обработчик
func NewHRHandler(hrService service.HRService, logger *slog.Logger) *HRHandler {
	return &HRHandler{base: newBase(logger), hrService: hrService}
}

func (h *HRHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHRRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	hr, err := h.hrService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, hr)
}

func (h *HRHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	hrs, err := h.hrService.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, hrs)
}

func (h *HRHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid hr id", err.Error())
		return
	}

	hr, err := h.hrService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, hr)
}

func (h *HRHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid hr id", err.Error())
		return
	}

	var req dto.UpdateHRRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	hr, err := h.hrService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, hr)
}

func (h *HRHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid hr id", err.Error())
		return
	}

	if err := h.hrService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
