package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// LocalUnitHandler обрабатывает запросы к производственным единицам
type LocalUnitHandler struct {
	base
	unitService service.LocalUnitService
}

// NewLocalUnitHandler создаёт новый обработчик
func NewLocalUnitHandler(unitService service.LocalUnitService, logger *slog.Logger) *LocalUnitHandler {
	return &LocalUnitHandler{base: newBase(logger), unitService: unitService}
}

func (h *LocalUnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLocalUnitRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	unit, err := h.unitService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, unit)
}

func (h *LocalUnitHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	units, err := h.unitService.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, units)
}

func (h *LocalUnitHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid local unit id", err.Error())
		return
	}

	unit, err := h.unitService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, unit)
}

func (h *LocalUnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid local unit id", err.Error())
		return
	}

	var req dto.UpdateLocalUnitRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	unit, err := h.unitService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, unit)
}

func (h *LocalUnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid local unit id", err.Error())
		return
	}

	if err := h.unitService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
