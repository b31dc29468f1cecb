package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/maslabs/chatwidget/internal/services/responder"
)

func TestHandleReply(t *testing.T) {
	responderService := responder.NewService()

	tests := []struct {
		name           string
		message        string
		omitParam      bool
		expectedStatus int
		expectedReply  string
		expectedError  string
	}{
		{
			name:           "Greeting",
			message:        "hello",
			expectedStatus: http.StatusOK,
			expectedReply:  "Hello! How can I help you today?",
		},
		{
			name:           "Greeting with different case",
			message:        "HELLO",
			expectedStatus: http.StatusOK,
			expectedReply:  "Hello! How can I help you today?",
		},
		{
			name:           "Name question with raw punctuation",
			message:        "What is your name?",
			expectedStatus: http.StatusOK,
			expectedReply:  "I'm a chatbot built by MAS.",
		},
		{
			name:           "Error keyword",
			message:        "error",
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Something went wrong",
		},
		{
			name:           "Unknown input gets fallback",
			message:        "banana",
			expectedStatus: http.StatusOK,
			expectedReply:  "Sorry, I didn't understand that.",
		},
		{
			name:           "Missing message parameter",
			omitParam:      true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing message query",
		},
		{
			name:           "Empty message parameter",
			message:        "",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing message query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/v1/chat/reply"
			if !tt.omitParam {
				target += "?message=" + url.QueryEscape(tt.message)
			}

			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()

			HandleReply(responderService, w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status code %d, got %d", tt.expectedStatus, w.Code)
			}

			if w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
			}

			var body struct {
				Response string `json:"response"`
				Error    string `json:"error"`
			}
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode response body: %v", err)
			}

			if body.Response != tt.expectedReply {
				t.Errorf("Expected reply %q, got %q", tt.expectedReply, body.Response)
			}

			if body.Error != tt.expectedError {
				t.Errorf("Expected error %q, got %q", tt.expectedError, body.Error)
			}
		})
	}
}
