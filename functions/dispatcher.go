package functions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/postmcp/logger"
)

// Dispatcher routes calls to handlers and wraps every outcome in a Response.
// It keeps no state between calls.
type Dispatcher struct {
	registry *Registry
	timeout  time.Duration
	log      *logger.Logger
}

type Option func(*Dispatcher)

// WithTimeout bounds every dispatch by d. Zero means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(disp *Dispatcher) { disp.timeout = d }
}

// WithLogger replaces the default logger.
func WithLogger(l *logger.Logger) Option {
	return func(disp *Dispatcher) { disp.log = l }
}

func NewDispatcher(registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logger.NewLogger("dispatcher", uuid.NewString())
	}
	return d
}

// List returns the function catalog.
func (d *Dispatcher) List() []Definition {
	return d.registry.List()
}

// Dispatch runs a call and never fails: unknown names, handler errors and
// handler panics all come back as error responses.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("function panicked", "function", call.Name, "panic", r)
			resp = Failure(fmt.Errorf("unexpected failure in %s: %v", call.Name, r))
		}
	}()

	args := call.Args()

	handler, ok := d.registry.Lookup(call.Name)
	if !ok {
		d.log.Warn("unknown function", "function", call.Name)
		return Failure(&notFoundError{name: call.Name})
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	content, err := handler.Invoke(ctx, args)
	if err != nil {
		d.log.Info("function failed", "function", call.Name, "error", err, "duration", time.Since(start))
		return Failure(err)
	}

	d.log.Debug("function succeeded", "function", call.Name, "duration", time.Since(start))
	return Success(content)
}
