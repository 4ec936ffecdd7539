package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrms-workforce/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-workforce/hrms-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	SignIn(w http.ResponseWriter, r *http.Request)
	SignOut(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
	}
}

// SignIn implements AuthHandler.
func (h *authHandlerImpl) SignIn(w http.ResponseWriter, r *http.Request) {
	var req auth.SignInRequest

	// 1. Decode JSON
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("SignIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	tokenResponse, err := h.authService.SignIn(r.Context(), req)
	if err != nil {
		slog.Warn("SignIn failed", "email", req.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed in successfully", tokenResponse)
}

// SignOut implements AuthHandler.
func (h *authHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.SignOut(r.Context(), jwtauth.TokenFromHeader(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Signed out successfully", nil)
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.authService.Me(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
