package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// VehicleHandler обрабатывает запросы к транспортным средствам
type VehicleHandler struct {
	base
	vehicleService service.VehicleService
}

// NewVehicleHandler создаёт новый обработчик
func NewVehicleHandler(vehicleService service.VehicleService, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{base: newBase(logger), vehicleService: vehicleService}
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	vehicle, err := h.vehicleService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) ListByLocalUnit(w http.ResponseWriter, r *http.Request) {
	unitID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid local unit id", err.Error())
		return
	}

	vehicles, err := h.vehicleService.GetByLocalUnitID(r.Context(), unitID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	vehicles, err := h.vehicleService.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid vehicle id", err.Error())
		return
	}

	vehicle, err := h.vehicleService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid vehicle id", err.Error())
		return
	}

	var req dto.UpdateVehicleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	vehicle, err := h.vehicleService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid vehicle id", err.Error())
		return
	}

	if err := h.vehicleService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
