package validate

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
)

// Schema is a named JSON schema document, typically the parameter block of a
// function definition.
type Schema struct {
	Name     string
	Document []byte
}

// CheckSchemas compiles every schema once and reports every failure, so a
// malformed catalog is caught at startup instead of on the first call.
// Names must be non-empty and unique.
func CheckSchemas(schemas []Schema) error {
	var result *multierror.Error

	seen := make(map[string]struct{}, len(schemas))
	for i, s := range schemas {
		if s.Name == "" {
			result = multierror.Append(result, fmt.Errorf("schema %d has no name", i))
			continue
		}
		if _, dup := seen[s.Name]; dup {
			result = multierror.Append(result, fmt.Errorf("'%s' is defined more than once", s.Name))
			continue
		}
		seen[s.Name] = struct{}{}

		if len(s.Document) == 0 {
			result = multierror.Append(result, fmt.Errorf("'%s' has an empty schema", s.Name))
			continue
		}
		if _, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(s.Document)); err != nil {
			result = multierror.Append(result, fmt.Errorf("internal schema error for '%s': %w", s.Name, err))
		}
	}

	return result.ErrorOrNil()
}
