package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// DepartmentHandler обрабатывает запросы к отделам и назначениям сотрудников
type DepartmentHandler struct {
	base
	deptService service.DepartmentService
}

// NewDepartmentHandler создаёт новый обработчик
func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{base: newBase(logger), deptService: deptService}
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, dept)
}

func (h *DepartmentHandler) ListByLocalUnit(w http.ResponseWriter, r *http.Request) {
	unitID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid local unit id", err.Error())
		return
	}

	depts, err := h.deptService.GetByLocalUnitID(r.Context(), unitID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, depts)
}

func (h *DepartmentHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid company id", err.Error())
		return
	}

	depts, err := h.deptService.GetByCompanyID(r.Context(), companyID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, depts)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dept)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	var req dto.UpdateDepartmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dept)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}

func (h *DepartmentHandler) ListHR(w http.ResponseWriter, r *http.Request) {
	deptID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	assignments, err := h.deptService.ListHR(r.Context(), deptID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, assignments)
}

func (h *DepartmentHandler) AssignHR(w http.ResponseWriter, r *http.Request) {
	deptID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}
	hrID, err := h.pathID(r, "hrId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid hr id", err.Error())
		return
	}

	var req dto.AssignHRRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	assignment, err := h.deptService.AssignHR(r.Context(), deptID, hrID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, assignment)
}

func (h *DepartmentHandler) RemoveHR(w http.ResponseWriter, r *http.Request) {
	deptID, err := h.pathID(r, "id")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}
	hrID, err := h.pathID(r, "hrId")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid hr id", err.Error())
		return
	}

	if err := h.deptService.RemoveHR(r.Context(), deptID, hrID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "deleted"})
}
