package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/salesai/analyst-api/internal/domain"
	"github.com/salesai/analyst-api/pkg/logger"
)

// Signup handles user registration.
//
// The response shapes mirror the original API: 201 with a confirmation
// message, and {message, error} bodies on failure. Unlike the original,
// failures are classified: bad input is 400, a duplicate email 409, and only
// store failures 500.
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Error registering user",
			"error":   "invalid JSON body",
		})
		return
	}

	_, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrInvalidInput):
			status = http.StatusBadRequest
		default:
			logger.ErrorContext(r.Context(), "Signup failed", "error", err)
		}
		writeJSON(w, status, map[string]string{
			"message": "Error registering user",
			"error":   err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// Login handles user authentication. The two 400 outcomes stay
// distinguishable because the web client routes each message to a different
// form field.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLoginFailure(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownIdentity):
			writeLoginFailure(w, http.StatusBadRequest, "Invalid email ID")
		case errors.Is(err, domain.ErrInvalidCredential):
			writeLoginFailure(w, http.StatusBadRequest, "Incorrect password")
		case errors.Is(err, domain.ErrInvalidInput):
			writeLoginFailure(w, http.StatusBadRequest, err.Error())
		default:
			logger.ErrorContext(r.Context(), "Login failed", "error", err)
			writeLoginFailure(w, http.StatusInternalServerError, "Error logging in")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Me returns the authenticated user's profile, proving the session token is
// usable for subsequent calls.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	claims := getClaims(r)
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Missing token claims")
		return
	}

	user, err := h.authService.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownIdentity) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.ErrorContext(r.Context(), "Profile lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Error fetching profile")
		return
	}

	writeJSON(w, http.StatusOK, user.ToUserInfo())
}

func writeLoginFailure(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.LoginResponse{
		Success: false,
		Message: message,
	})
}
