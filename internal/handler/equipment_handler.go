package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// EquipmentHandler обрабатывает запросы к оборудованию
type EquipmentHandler struct {
	base
	equipmentService service.EquipmentService
}

// NewEquipmentHandler создаёт новый обработчик
func NewEquipmentHandler(equipmentService service.EquipmentService, logger *slog.Logger) *EquipmentHandler {
	return &EquipmentHandler{base: newBase(logger), equipmentService: equipmentService}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEquipmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	eq, err := h.equipmentService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, eq)
}

func (h *EquipmentHandler) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	deptID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	eqs, err := h.equipmentService.GetByDepartmentID(r.Context(), deptID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, eqs)
}

func (h *EquipmentHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	eqs, err := h.equipmentService.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, eqs)
}

func (h *EquipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid equipment id", err.Error())
		return
	}

	eq, err := h.equipmentService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid equipment id", err.Error())
		return
	}

	var req dto.UpdateEquipmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	eq, err := h.equipmentService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, eq)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid equipment id", err.Error())
		return
	}

	if err := h.equipmentService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
