package postman

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Variable is a caller-supplied environment variable. Value is sent as given.
type Variable struct {
	Key   string `mapstructure:"key"`
	Value any    `mapstructure:"value"`
	Type  string `mapstructure:"type"`
}

type environmentValue struct {
	Key     string `json:"key"`
	Value   any    `json:"value"`
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

type newEnvironment struct {
	Name   string             `json:"name"`
	Values []environmentValue `json:"values"`
}

// ListEnvironments returns every environment visible to the API key.
func (c *Client) ListEnvironments(ctx context.Context) (Payload, error) {
	return c.do(ctx, http.MethodGet, "/environments", nil, "Failed to retrieve environments")
}

// GetEnvironment returns a single environment.
func (c *Client) GetEnvironment(ctx context.Context, environmentID string) (Payload, error) {
	if err := required(environmentID, "Environment ID is required"); err != nil {
		return nil, err
	}

	return c.do(ctx, http.MethodGet, "/environments/"+url.PathEscape(environmentID), nil,
		fmt.Sprintf("Failed to retrieve environment with ID %s", environmentID))
}

// CreateEnvironment creates an environment from key/value pairs. Every value
// is enabled and has type "default" unless the variable names one.
func (c *Client) CreateEnvironment(ctx context.Context, name string, variables []Variable) (Payload, error) {
	if err := required(name, "Environment name is required"); err != nil {
		return nil, err
	}

	body := map[string]any{
		"environment": newEnvironment{
			Name:   name,
			Values: environmentValues(variables),
		},
	}
	return c.do(ctx, http.MethodPost, "/environments", body, "Failed to create environment")
}

func environmentValues(variables []Variable) []environmentValue {
	values := make([]environmentValue, 0, len(variables))
	for _, v := range variables {
		typ := v.Type
		if typ == "" {
			typ = "default"
		}
		values = append(values, environmentValue{
			Key:     v.Key,
			Value:   v.Value,
			Enabled: true,
			Type:    typ,
		})
	}
	return values
}
