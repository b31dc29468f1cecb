package responder

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// SimulatedFailureMessage is the error text returned for the "error" keyword.
const SimulatedFailureMessage = "Something went wrong"

// FallbackReply is returned for any input with no canned match.
const FallbackReply = "Sorry, I didn't understand that."

// ErrSimulated is returned when a client deliberately requests a failure via
// the "error" keyword. It maps to a server-error status at the API boundary.
var ErrSimulated = errors.New("simulated responder failure")

// canned maps normalized input to its reply. Matching is exact - no
// tokenization, no partial matches.
var canned = map[string]string{
	"hello":              "Hello! How can I help you today?",
	"what is your name?": "I'm a chatbot built by MAS.",
}

// Service maps incoming text to a canned reply. It holds no state between
// calls.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Reply returns the canned reply for the given text. Normalization is
// case-folding only; surrounding whitespace is the caller's problem. The
// "error" keyword returns ErrSimulated.
func (s *Service) Reply(ctx context.Context, text string) (string, error) {
	normalized := strings.ToLower(text)

	if normalized == "error" {
		log.Debug().Msg("Simulated failure requested")
		return "", ErrSimulated
	}

	if reply, ok := canned[normalized]; ok {
		log.Debug().Str("input", normalized).Msg("Canned reply matched")
		return reply, nil
	}

	return FallbackReply, nil
}
