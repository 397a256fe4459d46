// Package gateway is the boundary through which every backend call is
// issued. It wraps the bank's REST API (/api/v1) in typed operations and
// translates transport and HTTP failures into the client error taxonomy.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const apiPrefix = "/api/v1"

// TokenSource supplies the bearer token for authenticated calls. An empty
// string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// errorBody is the backend's error envelope. Spring wraps most failures in
// {"message": "..."}; some filters emit {"error": "..."} instead.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{
			Operation: method + " " + path,
			Message:   "could not reach the server, check your connection",
			kind:      ErrNetwork,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.decodeError(method+" "+path, resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Status:    resp.StatusCode,
			Operation: method + " " + path,
			Message:   "the server returned an unexpected response",
			kind:      ErrServer,
		}
	}

	return nil
}

func (c *Client) decodeError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var parsed errorBody
	_ = json.Unmarshal(raw, &parsed)
	message := parsed.Message
	if message == "" {
		message = parsed.Error
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if message == "" {
			message = "invalid credentials"
		}
		return &Error{Status: resp.StatusCode, Operation: operation, Message: message, kind: ErrUnauthorized}
	case resp.StatusCode == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return &Error{Status: resp.StatusCode, Operation: operation, Message: message, kind: ErrNotFound}
	case resp.StatusCode >= 500:
		// Never leak raw 5xx payloads to the user.
		return &Error{Status: resp.StatusCode, Operation: operation, Message: "the server had a problem, try again later", kind: ErrServer}
	default:
		if message == "" {
			message = fmt.Sprintf("request rejected (status %d)", resp.StatusCode)
		}
		return &Error{Status: resp.StatusCode, Operation: operation, Message: message}
	}
}
