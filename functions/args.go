package functions

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/postmcp/postman"
)

// Args is the keyed argument bag a handler receives. Absent arguments are
// simply missing; presence checks belong to the handler.
type Args map[string]any

// Decode copies the bag into out, a pointer to a struct with mapstructure
// tags. Numbers are converted weakly (e.g. 42 -> "42") and absent keys leave
// fields at their zero value. Booleans never become strings.
func (a Args) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncKind(rejectBoolStrings),
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(map[string]any(a)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	return nil
}

func rejectBoolStrings(from, to reflect.Kind, data any) (any, error) {
	if from == reflect.Bool && to == reflect.String {
		return nil, fmt.Errorf("expected a string, got %v", data)
	}
	return data, nil
}

// variables accepts either a list of {key, value, type} objects or a plain
// key -> value object and returns the list form.
func variables(v any) ([]postman.Variable, error) {
	switch vars := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		if _, ok := vars["key"]; ok {
			return variables([]any{vars})
		}
		keys := make([]string, 0, len(vars))
		for k := range vars {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		list := make([]any, 0, len(keys))
		for _, k := range keys {
			list = append(list, map[string]any{"key": k, "value": vars[k]})
		}
		return variables(list)
	default:
		var holder struct {
			Variables []postman.Variable `mapstructure:"variables"`
		}
		if err := (Args{"variables": v}).Decode(&holder); err != nil {
			return nil, err
		}
		return holder.Variables, nil
	}
}
