package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/salesai/analyst-api/internal/service"
	"github.com/salesai/analyst-api/pkg/auth"
	"github.com/salesai/analyst-api/pkg/config"
	"github.com/salesai/analyst-api/pkg/logger"
)

type Handlers struct {
	authService service.AuthService
	config      *config.Config
}

func New(authService service.AuthService, config *config.Config) *Handlers {
	return &Handlers{
		authService: authService,
		config:      config,
	}
}

type claimsKey struct{}

// RequireAuth validates the bearer session token and puts its claims on the
// request context.
func (h *Handlers) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.Parse(token, h.config.Auth.JWTSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), logger.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getClaims(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(claimsKey{}).(*auth.Claims); ok {
		return claims
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}
