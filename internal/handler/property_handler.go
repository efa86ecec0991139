package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// PropertyHandler обрабатывает запросы к объектам недвижимости
type PropertyHandler struct {
	base
	propertyService service.PropertyService
}

// NewPropertyHandler создаёт новый обработчик
func NewPropertyHandler(propertyService service.PropertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{base: newBase(logger), propertyService: propertyService}
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePropertyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	property, err := h.propertyService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	properties, err := h.propertyService.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid property id", err.Error())
		return
	}

	property, err := h.propertyService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid property id", err.Error())
		return
	}

	var req dto.UpdatePropertyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	property, err := h.propertyService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid property id", err.Error())
		return
	}

	if err := h.propertyService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
