package functions

// Parameter is one name/value pair of a call.
type Parameter struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Call is a single invocation request.
type Call struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// NewCall builds a call from an ordered parameter list.
func NewCall(name string, params ...Parameter) Call {
	return Call{Name: name, Parameters: params}
}

// P is shorthand for a Parameter.
func P(name string, value any) Parameter {
	return Parameter{Name: name, Value: value}
}

// Args folds the ordered parameter list into a keyed bag. Later pairs with
// the same name overwrite earlier ones.
func (c Call) Args() Args {
	args := make(Args, len(c.Parameters))
	for _, p := range c.Parameters {
		args[p.Name] = p.Value
	}
	return args
}
