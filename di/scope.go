package di

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Scope tags how often a provider constructs its value.
type Scope int

const (
	// Singleton providers construct at most once per provider and share the
	// result with every consumer.
	Singleton Scope = iota

	// Transient providers construct a fresh value on every request.
	Transient
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// Provider hands out values of type T.
type Provider[T any] interface {
	Get() (*T, error)
	Scope() Scope
}

// Ctor builds a *T from dependencies the closure already holds.
type Ctor[T any] func() (*T, error)

// Cell is a lazily-initialized, thread-safe memoization cell.
//
// The first Get runs its constructor. The result, value or error, is kept and
// returned unchanged by every later Get, whose constructor is ignored.
// Concurrent first callers block until the single construction finishes.
//
// The zero value is ready to use. A Cell must not be copied after first use.
type Cell[T any] struct {
	once  sync.Once
	built atomic.Bool
	val   *T
	err   error
}

// Get returns the memoized value, constructing it with ctor on first use.
// A nil ctor on first use memoizes a NilConstructorError for name; a panicking
// ctor memoizes an error wrapping ErrProviderPanic.
func (c *Cell[T]) Get(name string, ctor Ctor[T]) (*T, error) {
	c.once.Do(func() {
		defer c.built.Store(true)
		defer func() {
			if rec := recover(); rec != nil {
				c.val, c.err = nil, fmt.Errorf("%w: %q: %v", ErrProviderPanic, name, rec)
			}
		}()
		if ctor == nil {
			c.err = NilConstructorError{Name: name}
			return
		}
		c.val, c.err = ctor()
	})
	return c.val, c.err
}

// Built reports whether the constructor has already run, without triggering it.
func (c *Cell[T]) Built() bool { return c.built.Load() }

// SingletonProvider is a Cell bound to a fixed constructor.
type SingletonProvider[T any] struct {
	name string
	ctor Ctor[T]
	cell Cell[T]
}

// NewSingleton returns a singleton provider for ctor.
//
// name is only used for error messages.
func NewSingleton[T any](name string, ctor Ctor[T]) *SingletonProvider[T] {
	return &SingletonProvider[T]{name: name, ctor: ctor}
}

// Get returns the memoized value, constructing it on first use.
func (p *SingletonProvider[T]) Get() (*T, error) { return p.cell.Get(p.name, p.ctor) }

// Scope implements Provider.
func (p *SingletonProvider[T]) Scope() Scope { return Singleton }

// Built reports whether the constructor has already run, without triggering it.
func (p *SingletonProvider[T]) Built() bool { return p.cell.Built() }

// TransientProvider constructs a new value on every Get.
type TransientProvider[T any] struct {
	name string
	ctor Ctor[T]
}

// NewTransient returns a transient provider for ctor.
func NewTransient[T any](name string, ctor Ctor[T]) *TransientProvider[T] {
	return &TransientProvider[T]{name: name, ctor: ctor}
}

// Get calls the constructor and returns its result unchanged.
func (p *TransientProvider[T]) Get() (*T, error) {
	if p.ctor == nil {
		return nil, NilConstructorError{Name: p.name}
	}
	return p.ctor()
}

// Scope implements Provider.
func (p *TransientProvider[T]) Scope() Scope { return Transient }

// NewProvider picks the provider implementation for scope.
func NewProvider[T any](name string, scope Scope, ctor Ctor[T]) Provider[T] {
	if scope == Transient {
		return NewTransient(name, ctor)
	}
	return NewSingleton(name, ctor)
}
