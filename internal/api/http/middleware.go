package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"rentacar-backend/internal/booking"
	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/security"
)

type contextKey string

const (
	requesterKey contextKey = "requester"
	requestIDKey contextKey = "request_id"
)

// RequestID tags every request with a correlation id for log lines.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// AccessLog writes one line per handled request.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "request_id", requestIDFromContext(r.Context()))
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware parses the Bearer token and stores the authenticated
// requester in the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, r, domain.ErrNoToken)
			return
		}
		token := header
		if len(token) > 7 && strings.EqualFold(token[0:7], "Bearer ") {
			token = token[7:]
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeError(w, r, security.ErrWrongTokenType)
			return
		}

		requester := booking.Requester{ID: claims.UserID, Role: claims.Role}
		ctx := context.WithValue(r.Context(), requesterKey, requester)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requesterFromContext returns the authenticated caller set by Require.
func requesterFromContext(ctx context.Context) (booking.Requester, bool) {
	requester, ok := ctx.Value(requesterKey).(booking.Requester)
	return requester, ok
}
