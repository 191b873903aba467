package postman

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

const errRequestFields = "Request name, method, and URL are required"

// RequestSpec describes a request to add to a collection. Headers may be a
// list of {key, value} objects or a single key -> value object. A string body
// is sent raw; any other body is JSON encoded.
type RequestSpec struct {
	Name        string
	Method      string
	URL         string
	Description string
	Headers     any
	Body        any
	Tests       string
}

// Header is a single request header in collection format.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r RequestSpec) Validate() error {
	for _, v := range []string{r.Name, r.Method, r.URL} {
		if err := required(v, errRequestFields); err != nil {
			return err
		}
	}
	return nil
}

// Entry builds the collection item for this request.
func (r RequestSpec) Entry() (map[string]any, error) {
	request := map[string]any{
		"method": strings.ToUpper(r.Method),
		"url":    r.URL,
	}
	if r.Description != "" {
		request["description"] = r.Description
	}

	headers, err := parseHeaders(r.Headers)
	if err != nil {
		return nil, &ValidationError{Err: err}
	}
	if len(headers) > 0 {
		request["header"] = headers
	}

	if r.Body != nil {
		body, err := rawBody(r.Body)
		if err != nil {
			return nil, &ValidationError{Err: err}
		}
		request["body"] = body
	}

	entry := map[string]any{
		"name":    r.Name,
		"request": request,
	}
	if r.Tests != "" {
		entry["event"] = []any{
			map[string]any{
				"listen": "test",
				"script": map[string]any{
					"type": "text/javascript",
					"exec": strings.Split(r.Tests, "\n"),
				},
			},
		}
	}
	return entry, nil
}

func parseHeaders(v any) ([]Header, error) {
	switch h := v.(type) {
	case nil:
		return nil, nil
	case []Header:
		return h, nil
	case map[string]any:
		keys := make([]string, 0, len(h))
		for k := range h {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		headers := make([]Header, 0, len(h))
		for _, k := range keys {
			headers = append(headers, Header{Key: k, Value: fmt.Sprint(h[k])})
		}
		return headers, nil
	case map[string]string:
		m := make(map[string]any, len(h))
		for k, v := range h {
			m[k] = v
		}
		return parseHeaders(m)
	case []any:
		headers := make([]Header, 0, len(h))
		for _, item := range h {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, errors.New("Request headers must be a list of {key, value} objects")
			}
			key, _ := obj["key"].(string)
			if key == "" {
				return nil, errors.New("Request header key is required")
			}
			value := ""
			if obj["value"] != nil {
				value = fmt.Sprint(obj["value"])
			}
			headers = append(headers, Header{Key: key, Value: value})
		}
		return headers, nil
	default:
		return nil, fmt.Errorf("Request headers must be a list or an object, got %T", v)
	}
}

func rawBody(v any) (map[string]any, error) {
	if s, ok := v.(string); ok {
		return map[string]any{
			"mode": "raw",
			"raw":  s,
		}, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("Request body is not JSON encodable: %w", err)
	}
	return map[string]any{
		"mode": "raw",
		"raw":  string(b),
		"options": map[string]any{
			"raw": map[string]any{"language": "json"},
		},
	}, nil
}
