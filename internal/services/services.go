package services

import (
	"github.com/maslabs/chatwidget/internal/infrastructure/redis"
	"github.com/maslabs/chatwidget/internal/services/responder"
	"github.com/maslabs/chatwidget/internal/services/session"
	"github.com/rs/zerolog/log"
)

// Services holds the initialised service singletons shared by the handlers.
type Services struct {
	redisService     *redis.Service
	responderService *responder.Service
	sessionService   *session.Service
}

// InitializeServices initializes all required services
func InitializeServices() *Services {
	redisService := redis.NewService()
	if redisService == nil {
		log.Warn().Msg("Redis unavailable - using in-memory fallbacks")
	}

	return &Services{
		redisService:     redisService,
		responderService: responder.NewService(),
		sessionService:   session.NewService(redisService),
	}
}

func (s *Services) GetResponderService() *responder.Service {
	return s.responderService
}

func (s *Services) GetSessionService() *session.Service {
	return s.sessionService
}

// Shutdown releases held connections.
func (s *Services) Shutdown() {
	if s.redisService != nil {
		if err := s.redisService.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}
}
