package middleware

import (
	"context"
	"net/http"

	"github.com/maslabs/chatwidget/internal/services/session"
	"github.com/rs/zerolog/log"
)

type contextKey string

const sessionClaimsKey contextKey = "sessionClaims"

// WithSession resolves the anonymous widget session accompanying the request
// and stores its claims in the context. Sessions are anonymous and gate
// nothing, so requests without a usable session proceed unchanged.
func WithSession(sessionService *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := sessionService.ValidateSession(r)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to validate widget session")
			}

			if claims != nil {
				ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromContext returns the claims attached by WithSession, or nil when
// the request carried no valid session.
func SessionFromContext(ctx context.Context) *session.SessionClaims {
	claims, _ := ctx.Value(sessionClaimsKey).(*session.SessionClaims)
	return claims
}
