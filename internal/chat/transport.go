// ABOUTME: Transport interface and HTTP client for the chat proxy endpoint.
// ABOUTME: POSTs {messages, systemPrompt} with a bearer token; expects {response}.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Message is one turn in the outbound payload.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the proxy request body.
type Request struct {
	Messages     []Message `json:"messages"`
	SystemPrompt string    `json:"systemPrompt"`
}

// Transport sends one completion request and returns the raw reply
// text. Implementations own their own timeout and retry policy; the
// session treats any error as a failed turn.
type Transport interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client talks to the chat proxy over HTTP. The proxy holds the model
// provider's API key server-side; the bearer token is a shared secret
// that gates proxy access.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// Compile-time check that Client implements Transport.
var _ Transport = (*Client)(nil)

// NewClient creates a proxy client for the given base URL and bearer
// token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}
}

type proxyResponse struct {
	Response string `json:"response"`
}

// Complete sends the request and returns the reply text. Any non-200
// status is an error carrying the status code and raw body for
// diagnostics.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, string(data))
	}

	var decoded proxyResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return decoded.Response, nil
}
