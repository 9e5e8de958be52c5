package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"authstack/internal/api/middleware"
	"authstack/internal/app/service"
	"authstack/internal/common"
	"authstack/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService         *service.AuthService
	verificationService *service.VerificationService
	sessionTTL          time.Duration
}

func NewAuthHandler(
	authService *service.AuthService,
	verificationService *service.VerificationService,
	sessionTTL time.Duration,
) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		verificationService: verificationService,
		sessionTTL:          sessionTTL,
	}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Post("/verifyemail", h.verifyEmail)
	r.Post("/forgotpassword", h.forgotPassword)
	r.Post("/resetpassword", h.resetPassword)

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Get("/me", h.me)
	})
}

type authResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    *model.User `json:"user,omitempty"`
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.Signup(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, authResponse{
		Success: true,
		Message: "User created successfully",
		User:    user,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	middleware.SetSessionCookie(w, result.Token, h.sessionTTL)
	common.RespondWithJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		User:    result.User,
	})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w)
	common.RespondWithJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Logout successful",
	})
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

func (h *AuthHandler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := h.verificationService.VerifyEmail(r.Context(), req.Token); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Email verified successfully",
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.verificationService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	// Always 200 so the endpoint cannot confirm whether an address exists.
	common.RespondWithJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "If the address is registered, a reset email is on its way",
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *AuthHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if _, err := h.verificationService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Password reset successfully",
	})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, authResponse{Success: true, User: user})
}
