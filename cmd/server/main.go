package main

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/maslabs/chatwidget/internal/api/v1/handlers"
	"github.com/maslabs/chatwidget/internal/config"
	"github.com/maslabs/chatwidget/internal/logger"
	"github.com/maslabs/chatwidget/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid server configuration")
	}

	svcs := services.InitializeServices()
	defer svcs.Shutdown()

	r := setupRouter(svcs)

	log.Info().Str("addr", cfg.Addr).Msg("Server starting")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupRouter(svcs *services.Services) *mux.Router {
	r := mux.NewRouter()

	// The widget embed is loaded cross-origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	handlers.RegisterV1Routes(r, svcs)
	return r
}
