package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/business-console-api/internal/domain"
	"github.com/business-console-api/internal/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// base - общие помощники обработчиков: сериализация ответов,
// разбор идентификаторов и отображение бизнес-ошибок в статусы
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{validator: validator.New(), logger: logger}
}

func (b *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (b *base) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		b.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}

// decodeAndValidate читает тело запроса в dst и прогоняет его через валидатор.
// При ошибке ответ уже записан, вызывающему остаётся выйти
func (b *base) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		b.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	if err := b.validator.Struct(dst); err != nil {
		b.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return false
	}
	return true
}

// pathID извлекает числовой параметр маршрута по имени
func (b *base) pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, errors.New("missing " + name + " path parameter")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name + " path parameter")
	}
	return id, nil
}

// queryID извлекает обязательный числовой параметр строки запроса
func (b *base) queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New("missing " + name + " query parameter")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid " + name + " query parameter")
	}
	return id, nil
}

func (b *base) handleServiceError(w http.ResponseWriter, err error) {
	var parseErr *time.ParseError

	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		b.respondError(w, http.StatusNotFound, "company not found", "")
	case errors.Is(err, domain.ErrLocalUnitNotFound):
		b.respondError(w, http.StatusNotFound, "local unit not found", "")
	case errors.Is(err, domain.ErrDepartmentNotFound):
		b.respondError(w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrHRNotFound):
		b.respondError(w, http.StatusNotFound, "hr record not found", "")
	case errors.Is(err, domain.ErrEquipmentNotFound):
		b.respondError(w, http.StatusNotFound, "equipment not found", "")
	case errors.Is(err, domain.ErrVehicleNotFound):
		b.respondError(w, http.StatusNotFound, "vehicle not found", "")
	case errors.Is(err, domain.ErrPropertyNotFound):
		b.respondError(w, http.StatusNotFound, "property not found", "")
	case errors.Is(err, domain.ErrDocumentNotFound):
		b.respondError(w, http.StatusNotFound, "document not found", "")
	case errors.Is(err, domain.ErrModuleNotFound):
		b.respondError(w, http.StatusNotFound, "module not found", "")
	case errors.Is(err, domain.ErrAssignmentNotFound):
		b.respondError(w, http.StatusNotFound, "department assignment not found", "")
	case errors.Is(err, domain.ErrDuplicateDepartmentName):
		b.respondError(w, http.StatusConflict, "department with this name already exists in the local unit", "")
	case errors.Is(err, domain.ErrOpenAssignmentExists):
		b.respondError(w, http.StatusConflict, "hr already has an open assignment in this department", "")
	case errors.Is(err, domain.ErrAssignmentClosed):
		b.respondError(w, http.StatusConflict, "closed assignments cannot be removed", "")
	case errors.Is(err, domain.ErrParentMismatch):
		b.respondError(w, http.StatusConflict, "record does not belong to the referenced parent", "")
	case errors.Is(err, domain.ErrEmptyFile):
		b.respondError(w, http.StatusBadRequest, "uploaded file is empty", "")
	case errors.Is(err, domain.ErrInvalidCredentials):
		b.respondError(w, http.StatusUnauthorized, "invalid email or password", "")
	case errors.As(err, &parseErr):
		b.respondError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", "")
	default:
		b.logger.Error("internal error", slog.Any("error", err))
		b.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}
