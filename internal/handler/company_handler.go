package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// CompanyHandler обрабатывает запросы к компаниям
type CompanyHandler struct {
	base
	companyService service.CompanyService
}

// NewCompanyHandler создаёт новый обработчик
func NewCompanyHandler(companyService service.CompanyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{base: newBase(logger), companyService: companyService}
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	company, err := h.companyService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	company, err := h.companyService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	company, err := h.companyService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
