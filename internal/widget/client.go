package widget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ResponderError is a structured error payload returned by the responder
// with a non-success status.
type ResponderError struct {
	StatusCode int
	Message    string
}

func (e *ResponderError) Error() string {
	return fmt.Sprintf("responder: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to the responder's reply endpoint over HTTP. It implements
// the Responder interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Reply sends the raw user text as the message query parameter and decodes
// the result. A non-2xx status with a parseable error body becomes a
// *ResponderError; anything else is a transport failure.
func (c *Client) Reply(ctx context.Context, text string) (string, error) {
	endpoint := c.baseURL + "/v1/chat/reply?" + url.Values{"message": {text}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build reply request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("Reply request failed")
		return "", fmt.Errorf("send reply request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read reply body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
			return "", &ResponderError{StatusCode: resp.StatusCode, Message: payload.Error}
		}
		return "", fmt.Errorf("responder returned status %d", resp.StatusCode)
	}

	var payload struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode reply body: %w", err)
	}

	return payload.Response, nil
}
