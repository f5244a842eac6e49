package http

import (
	"encoding/json"
	"net/http"

	"github.com/sandevex/hiring-backend-go/internal/handler/http/response"
	"github.com/sandevex/hiring-backend-go/internal/pkg/session"
	"github.com/sandevex/hiring-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService    auth.AuthService
	sessionService session.Service
}

func NewAuthHandler(authService auth.AuthService, sessionService session.Service) AuthHandler {
	return &authHandlerImpl{
		authService:    authService,
		sessionService: sessionService,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login implements AuthHandler
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Password == "" {
		response.BadRequest(w, "Password is required", nil)
		return
	}

	token, expiresAt, err := h.authService.Login(r.Context(), req.Password)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.sessionService.Cookie(token, expiresAt))
	response.SuccessWithMessage(w, "Logged in", map[string]any{
		"expires_at": expiresAt,
	})
}

// Logout implements AuthHandler
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionService.ClearCookie())
	response.SuccessWithMessage(w, "Logged out", nil)
}
