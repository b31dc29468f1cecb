package chat

import (
	"errors"
	"net/http"

	"github.com/maslabs/chatwidget/internal/api/v1/middleware"
	"github.com/maslabs/chatwidget/internal/services/responder"
	"github.com/maslabs/chatwidget/pkg/httpext"
	"github.com/rs/zerolog/log"
)

// HandleReply handles one widget exchange: the raw user text arrives as the
// message query parameter and exactly one reply or error payload goes back.
func HandleReply(responderService *responder.Service, w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if message == "" {
		log.Warn().
			Str("client_ip", r.RemoteAddr).
			Msg("Reply request missing message query")
		httpext.JsonError(w, "Missing message query", http.StatusBadRequest)
		return
	}

	event := log.Info().
		Str("client_ip", r.RemoteAddr).
		Int("message_length", len(message))
	if claims := middleware.SessionFromContext(r.Context()); claims != nil {
		event = event.Str("session_id", claims.SessionID)
	}
	event.Msg("Received reply request")

	reply, err := responderService.Reply(r.Context(), message)
	if err != nil {
		if errors.Is(err, responder.ErrSimulated) {
			httpext.JsonError(w, responder.SimulatedFailureMessage, http.StatusInternalServerError)
			return
		}
		log.Error().Err(err).Msg("Failed to produce reply")
		httpext.JsonError(w, "Failed to produce reply", http.StatusInternalServerError)
		return
	}

	httpext.JsonReply(w, reply)

	log.Info().
		Str("client_ip", r.RemoteAddr).
		Int("status", http.StatusOK).
		Msg("Reply request processed successfully")
}
