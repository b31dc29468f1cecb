package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	v1chat "github.com/maslabs/chatwidget/internal/api/v1/handlers/chat"
	v1mware "github.com/maslabs/chatwidget/internal/api/v1/middleware"
	"github.com/maslabs/chatwidget/internal/services"
)

func RegisterV1Routes(router *mux.Router, services *services.Services) {
	// v1 routes
	v1 := router.PathPrefix("/v1").Subrouter()

	// Widget embed (no auth; session minted on the fly)
	v1.HandleFunc("/widget.js", func(w http.ResponseWriter, r *http.Request) {
		HandleWidgetJS(services.GetSessionService(), w, r)
	}).Methods("GET", "OPTIONS")

	// Chat v1 routes
	v1chatRouter := v1.PathPrefix("/chat").Subrouter()
	v1chatRouter.Handle("/reply", v1mware.WithSession(services.GetSessionService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v1chat.HandleReply(services.GetResponderService(), w, r)
	}))).Methods("GET", "OPTIONS")
}
