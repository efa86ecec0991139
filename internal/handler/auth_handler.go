package handler

import (
	"log/slog"
	"net/http"

	"github.com/business-console-api/internal/dto"
	"github.com/business-console-api/internal/service"
)

// AuthHandler обрабатывает вход операторов
type AuthHandler struct {
	base
	authService service.AuthService
}

// NewAuthHandler создаёт новый обработчик
func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{base: newBase(logger), authService: authService}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
