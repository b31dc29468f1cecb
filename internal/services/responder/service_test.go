package responder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	service := NewService()

	tests := []struct {
		name          string
		input         string
		expectedReply string
		expectedErr   error
	}{
		{
			name:          "Greeting",
			input:         "hello",
			expectedReply: "Hello! How can I help you today?",
		},
		{
			name:          "Greeting is case-insensitive",
			input:         "HELLO",
			expectedReply: "Hello! How can I help you today?",
		},
		{
			name:          "Greeting with mixed case",
			input:         "Hello",
			expectedReply: "Hello! How can I help you today?",
		},
		{
			name:          "Name question",
			input:         "What is your name?",
			expectedReply: "I'm a chatbot built by MAS.",
		},
		{
			name:        "Error keyword",
			input:       "error",
			expectedErr: ErrSimulated,
		},
		{
			name:        "Error keyword is case-insensitive",
			input:       "ERROR",
			expectedErr: ErrSimulated,
		},
		{
			name:          "Unknown input gets fallback",
			input:         "banana",
			expectedReply: FallbackReply,
		},
		{
			name:          "No partial matching",
			input:         "hello there",
			expectedReply: FallbackReply,
		},
		{
			name:          "Surrounding whitespace breaks the exact match",
			input:         "  hello  ",
			expectedReply: FallbackReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := service.Reply(context.Background(), tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReply, reply)
		})
	}
}

func TestReplyIsStateless(t *testing.T) {
	service := NewService()

	// The same input yields the same reply regardless of call history.
	first, err := service.Reply(context.Background(), "hello")
	assert.NoError(t, err)

	_, _ = service.Reply(context.Background(), "error")

	second, err := service.Reply(context.Background(), "hello")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
