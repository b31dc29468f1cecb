package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// ServerConfig holds the listener settings for the responder service.
type ServerConfig struct {
	Addr     string `validate:"required,hostname_port"`
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

// GetServerConfig reads and validates the server configuration from the
// environment.
func GetServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:     GetEnvOrDefault("SERVER_ADDR", ":8080"),
		LogLevel: GetEnvOrDefault("LOG_LEVEL", "info"),
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		log.Error().Err(err).Msg("Invalid server configuration")
		return nil, err
	}

	log.Info().Str("addr", cfg.Addr).Msg("Server configuration loaded")
	return cfg, nil
}
