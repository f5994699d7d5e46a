package handlers

import (
	"errors"
	"net/http"

	"github.com/dom/floricola-erp/internal/api/middleware"
	"github.com/dom/floricola-erp/internal/api/respond"
	"github.com/dom/floricola-erp/internal/auth"
	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/service"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	OK    bool      `json:"ok"`
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type LoginResponse struct {
	OK    bool              `json:"ok"`
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type MeResponse struct {
	OK   bool         `json:"ok"`
	User *auth.Claims `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			respond.Error(w, http.StatusBadRequest, MsgMissingCredentials)
			return
		}
		writeError(w, err, "Error registrando usuario")
		return
	}

	respond.OK(w, RegisterResponse{
		OK:    true,
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			respond.Error(w, http.StatusBadRequest, MsgMissingCredentials)
			return
		}
		writeError(w, err, "Error iniciando sesión")
		return
	}

	respond.OK(w, LoginResponse{
		OK:    true,
		Token: result.Token,
		User:  result.User,
	})
}

// Me echoes the claims the gate decoded; storage is not consulted.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	respond.OK(w, MeResponse{OK: true, User: claims})
}
