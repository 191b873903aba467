package postman

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/postmcp/logger"
)

// Payload is a decoded Postman API response. It is handed back to callers
// verbatim; numbers are kept as json.Number so nothing is lost on re-encode.
type Payload = map[string]any

// Client is a stateless facade over the Postman API. Every method is an
// independent call sequence; nothing is cached between calls.
type Client struct {
	config     Config
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a Postman API client. A missing API key is an error.
func New(cfg Config) (*Client, error) {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid postman config: %w", err)
	}

	return &Client{
		config:     cfg,
		httpClient: cfg.NewHTTPClient(),
		log:        logger.NewLogger("postman", uuid.NewString()),
	}, nil
}

// BaseURL returns the API origin this client talks to.
func (c *Client) BaseURL() string { return c.config.BaseURL }

// do executes a single request. Any non-2xx status, transport failure or
// unreadable body is reported as a *RemoteError carrying failure as its
// message. There are no retries.
func (c *Client) do(ctx context.Context, method, path string, body any, failure string) (Payload, error) {
	endpoint := c.config.BaseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("postman request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		rerr := &RemoteError{Op: failure, Err: err}
		c.log.Warn(rerr.Detail(), "method", method, "path", path)
		return nil, rerr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		rerr := &RemoteError{Op: failure, StatusCode: resp.StatusCode, Err: err}
		c.log.Warn(rerr.Detail(), "method", method, "path", path)
		return nil, rerr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rerr := &RemoteError{Op: failure, StatusCode: resp.StatusCode, Body: string(respBody)}
		c.log.Warn(rerr.Detail(), "method", method, "path", path)
		return nil, rerr
	}

	return decodePayload(respBody)
}

func decodePayload(b []byte) (Payload, error) {
	var payload Payload
	if len(bytes.TrimSpace(b)) == 0 {
		return Payload{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload == nil {
		return nil, errors.New("failed to decode response: empty document")
	}
	return payload, nil
}

// required reports a ValidationError with message if value is empty.
func required(value any, message string) error {
	if err := validation.Validate(value, validation.Required.Error(message)); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
