package session

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/maslabs/chatwidget/internal/config"
	"github.com/maslabs/chatwidget/internal/infrastructure/redis"
	"github.com/rs/zerolog/log"
)

const cookieLifetime = 1 * time.Hour

// SessionClaims are the signed contents of the widget session cookie.
// Sessions are anonymous; they carry no user identity and grant no access
// beyond correlating requests from one embedded widget instance.
type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	WidgetID  string `json:"wid,omitempty"`
}

type Service struct {
	store Store
}

// NewService builds a session service backed by Redis when available,
// falling back to the in-memory store otherwise.
func NewService(redisService *redis.Service) *Service {
	var store Store
	if redisService != nil && redisService.Ping(context.Background()) == nil {
		store = &redisStore{redisService: redisService}
	} else {
		log.Info().Msg("Using in-memory session storage")
		store = newMemoryStore()
	}

	return &Service{store: store}
}

// CreateSession mints an anonymous session, persists it, and sets the signed
// cookie on the response.
func (s *Service) CreateSession(w http.ResponseWriter, widgetID string) error {
	ctx := context.Background()

	sessionID := uuid.New().String()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cookieLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        sessionID,
		},
		SessionID: sessionID,
		WidgetID:  widgetID,
	}

	if err := s.store.Set(ctx, sessionID, claims); err != nil {
		return err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(config.GetSessionSecret()))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.GetSessionCookieName(),
		Value:    signedToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(cookieLifetime),
	})
	return nil
}

// ValidateSession returns the claims for a valid session cookie, or nil when
// no usable session is present.
func (s *Service) ValidateSession(r *http.Request) (*SessionClaims, error) {
	ctx := r.Context()

	cookie, err := r.Cookie(config.GetSessionCookieName())
	if err != nil {
		if err == http.ErrNoCookie {
			return nil, nil
		}
		return nil, err
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GetSessionSecret()), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, nil
	}

	// The cookie alone is not enough; the session must still exist server-side.
	stored, err := s.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}

	return claims, nil
}
