package functions

import (
	"context"
	"fmt"

	"github.com/postmcp/validate"
)

// Handler performs a single function.
type Handler interface {
	Invoke(ctx context.Context, args Args) (any, error)
}

// HandlerFunc adapts an ordinary function to a Handler.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

func (f HandlerFunc) Invoke(ctx context.Context, args Args) (any, error) { return f(ctx, args) }

// Function pairs a definition with the handler that implements it.
type Function struct {
	Definition Definition
	Handler    Handler
}

// Registry is the immutable function catalog. It is built once by
// NewRegistry and only read afterwards, so it is safe for concurrent use.
type Registry struct {
	defs     []Definition
	handlers map[string]Handler
}

// NewRegistry builds a catalog in the given order. Every parameter block must
// compile as a JSON schema and every name must be unique.
func NewRegistry(fns ...Function) (*Registry, error) {
	r := &Registry{
		defs:     make([]Definition, 0, len(fns)),
		handlers: make(map[string]Handler, len(fns)),
	}

	schemas := make([]validate.Schema, 0, len(fns))
	for _, fn := range fns {
		name := fn.Definition.Name
		if _, dup := r.handlers[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFunction, name)
		}
		if fn.Handler == nil {
			return nil, fmt.Errorf("function %s has no handler", name)
		}

		doc, err := fn.Definition.Schema()
		if err != nil {
			return nil, fmt.Errorf("failed to encode parameters of %s: %w", name, err)
		}
		schemas = append(schemas, validate.Schema{Name: name, Document: doc})

		r.defs = append(r.defs, fn.Definition.clone())
		r.handlers[name] = fn.Handler
	}

	if err := validate.CheckSchemas(schemas); err != nil {
		return nil, fmt.Errorf("invalid function catalog: %w", err)
	}
	return r, nil
}

// List returns the catalog in registration order. The result is a copy.
func (r *Registry) List() []Definition {
	defs := make([]Definition, 0, len(r.defs))
	for _, d := range r.defs {
		defs = append(defs, d.clone())
	}
	return defs
}

// Lookup returns the handler registered under name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

func (r *Registry) Len() int { return len(r.defs) }
