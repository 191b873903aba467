package postman

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	DefaultBaseURL = "https://api.getpostman.com"
	DefaultTimeout = 30 * time.Second
)

// Config contains configuration for the Postman API client.
type Config struct {
	// BaseURL is the origin of the Postman API.
	// Default: https://api.getpostman.com
	BaseURL string

	// APIKey is sent unchanged as the X-Api-Key header on every call.
	APIKey string

	// Timeout for a single HTTP round trip.
	// Default: 30 seconds
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required.Error(ErrMissingAPIKey.Error())),
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// NewHTTPClient creates the HTTP client used for every call. The client keeps
// no session state beyond the transport's idle connections.
func (c Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
