package functions

import (
	"errors"
	"fmt"
)

var (
	// ErrFunctionNotFound matches calls naming a function that is not in the
	// catalog. Such calls never reach a handler.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrInvalidArguments matches arguments that could not be decoded into the
	// handler's argument type.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrDuplicateFunction is returned when a catalog registers a name twice.
	ErrDuplicateFunction = errors.New("duplicate function")
)

type notFoundError struct {
	name string
}

func (e *notFoundError) Error() string { return fmt.Sprintf("Function %s not found", e.name) }

func (e *notFoundError) Is(target error) bool { return target == ErrFunctionNotFound }
