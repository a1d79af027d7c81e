package di

import (
	"errors"
	"strconv"
)

var (
	// ErrProviderPanic is returned (wrapped) when a constructor panics inside a
	// Cell, a SingletonProvider or a Registry.
	ErrProviderPanic = errors.New("di: panic during construction")

	// ErrNilRegistry is returned when a nil *Registry is used.
	ErrNilRegistry = errors.New("di: nil registry")
)

// DuplicateKeyError is returned when a provider is registered under a key that
// already exists in the Registry.
type DuplicateKeyError struct{ Key string }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	// Example: di: duplicate provider key "overview.controller"
	return "di: duplicate provider key " + strconv.Quote(e.Key)
}

// MissingDependencyError is returned when no provider is registered for a key.
type MissingDependencyError struct{ Key string }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	// Example: di: dependency "webview" missing
	return "di: dependency " + strconv.Quote(e.Key) + " missing"
}

// WrongTypeDependencyError is returned by ResolveAs when the provider for a key
// produces a value of a different type than requested.
type WrongTypeDependencyError struct {
	// Key is the dependency key requested.
	Key string

	// GotType is the dynamic type of the resolved value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	// Example: di: dependency "webview" has wrong type (*entry.Controller)
	return "di: dependency " + strconv.Quote(e.Key) + " has wrong type (" + e.GotType + ")"
}

// NilConstructorError is returned when a provider is created with a nil
// constructor.
type NilConstructorError struct{ Name string }

// Error implements the error interface.
func (e NilConstructorError) Error() string {
	return "di: nil constructor for " + strconv.Quote(e.Name)
}
