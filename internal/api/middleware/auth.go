package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dom/floricola-erp/internal/api/respond"
	"github.com/dom/floricola-erp/internal/auth"
	"github.com/dom/floricola-erp/internal/domain"
	"github.com/dom/floricola-erp/internal/metrics"
	"go.uber.org/zap"
)

type contextKey string

const (
	ClaimsKey contextKey = "claims"
)

const (
	MsgMissingToken = "Sin token"
	MsgInvalidToken = "Token inválido"
)

type TokenValidator interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Auth lets a request through only with a valid bearer token, and stores the
// decoded claims in the request context.
func Auth(validator TokenValidator, log *zap.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := BearerToken(r)
			if err != nil {
				log.Debug("[middleware.Auth] missing bearer token", zap.String("path", r.URL.Path))
				m.AuthEvent("gate", "missing_token")
				respond.Error(w, http.StatusUnauthorized, MsgMissingToken)
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				log.Info("[middleware.Auth] token validation failed", zap.String("path", r.URL.Path), zap.Error(err))
				m.AuthEvent("gate", "invalid_token")
				respond.Error(w, http.StatusUnauthorized, MsgInvalidToken)
				return
			}

			m.AuthEvent("gate", "pass")
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return "", domain.ErrMissingToken
	}
	return token, nil
}

func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims, ok
}
