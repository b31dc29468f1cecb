package widget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replyServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/reply" {
			http.NotFound(w, r)
			return
		}

		message := r.URL.Query().Get("message")
		w.Header().Set("Content-Type", "application/json")

		switch message {
		case "":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Missing message query"})
		case "error":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Something went wrong"})
		default:
			json.NewEncoder(w).Encode(map[string]string{"response": "echo: " + message})
		}
	}))
}

func TestClientReply(t *testing.T) {
	server := replyServer(t)
	defer server.Close()

	client := NewClient(server.URL)

	reply, err := client.Reply(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", reply)
}

func TestClientSendsRawTextURLEscaped(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.URL.Query().Get("message")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Reply(context.Background(), "What is your name?")
	require.NoError(t, err)

	// The raw, un-normalized text survives the round trip.
	assert.Equal(t, "What is your name?", received)
}

func TestClientStructuredError(t *testing.T) {
	server := replyServer(t)
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Reply(context.Background(), "error")
	require.Error(t, err)

	var respErr *ResponderError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, http.StatusInternalServerError, respErr.StatusCode)
	assert.Equal(t, "Something went wrong", respErr.Message)
}

func TestClientNonJSONFailureBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Reply(context.Background(), "hello")
	require.Error(t, err)

	var respErr *ResponderError
	assert.False(t, errors.As(err, &respErr), "plain-text failure should not be a structured error")
}

func TestClientMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Reply(context.Background(), "hello")
	assert.Error(t, err)
}

func TestClientNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)

	_, err := client.Reply(context.Background(), "hello")
	require.Error(t, err)

	var respErr *ResponderError
	assert.False(t, errors.As(err, &respErr))
}
