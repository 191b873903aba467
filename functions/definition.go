package functions

import (
	"encoding/json"
	"maps"
	"slices"
)

// Property describes a single named parameter of a function.
type Property struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Parameters is the JSON-schema style parameter block of a definition.
type Parameters struct {
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
	Type       string              `json:"type"`
}

// Definition is the static, externally visible description of a function.
type Definition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

// ObjectParameters builds a Parameters block of type "object".
func ObjectParameters(properties map[string]Property, required ...string) Parameters {
	if properties == nil {
		properties = map[string]Property{}
	}
	if required == nil {
		required = []string{}
	}
	return Parameters{
		Properties: properties,
		Required:   required,
		Type:       "object",
	}
}

// Schema returns the parameter block encoded as a JSON schema document.
func (d Definition) Schema() ([]byte, error) {
	return json.Marshal(d.Parameters)
}

func (d Definition) clone() Definition {
	d.Parameters.Properties = maps.Clone(d.Parameters.Properties)
	d.Parameters.Required = slices.Clone(d.Parameters.Required)
	return d
}
