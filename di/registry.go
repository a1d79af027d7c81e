package di

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry is a name-keyed service locator with explicit scope tags.
//
// It is intentionally:
// - explicit (every key is registered by hand in the composition root)
// - typed at the edges (Register / ResolveAs are generic)
// - safe for concurrent Resolve calls
//
// Expected usage:
//
//	reg := di.NewRegistry()
//	_ = di.Register(reg, "webview", di.Singleton, newWebView)
//	wv, err := di.ResolveAs[webview.Headless](reg, "webview")
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	scope   Scope
	typ     string
	resolve func() (any, error)
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]entry{}}
}

// Register stores ctor under key with the given scope.
//
// A constructor panic is converted into an error wrapping ErrProviderPanic.
// For singletons that error is memoized like any other construction error.
func Register[T any](r *Registry, key string, scope Scope, ctor Ctor[T]) error {
	if r == nil {
		return ErrNilRegistry
	}
	if ctor == nil {
		return NilConstructorError{Name: key}
	}

	p := NewProvider(key, scope, recovering(key, ctor))

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = map[string]entry{}
	}
	if _, exists := r.entries[key]; exists {
		return DuplicateKeyError{Key: key}
	}
	r.entries[key] = entry{
		scope: scope,
		typ:   reflect.TypeOf((**T)(nil)).Elem().String(),
		resolve: func() (any, error) {
			v, err := p.Get()
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
	return nil
}

// MustRegister is Register that panics on error.
// Useful in composition roots where a bad registration is a programming error.
func MustRegister[T any](r *Registry, key string, scope Scope, ctor Ctor[T]) {
	if err := Register(r, key, scope, ctor); err != nil {
		panic(err)
	}
}

func recovering[T any](key string, ctor Ctor[T]) Ctor[T] {
	return func() (val *T, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				val = nil
				err = fmt.Errorf("%w: %q: %v", ErrProviderPanic, key, rec)
			}
		}()
		return ctor()
	}
}

// Resolve returns the value for key, constructing it according to its scope.
func (r *Registry) Resolve(key string) (any, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, MissingDependencyError{Key: key}
	}
	return e.resolve()
}

// ResolveAs returns the value for key typed as *T.
//
// It returns:
//   - MissingDependencyError if the key is not registered
//   - WrongTypeDependencyError if the provider produces something other than *T
//   - the constructor's own error, unchanged
func ResolveAs[T any](r *Registry, key string) (*T, error) {
	raw, err := r.Resolve(key)
	if err != nil {
		return nil, err
	}
	v, ok := raw.(*T)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return v, nil
}

// MustResolveAs returns the value typed as *T or panics.
func MustResolveAs[T any](r *Registry, key string) *T {
	v, err := ResolveAs[T](r, key)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a provider is registered for key.
func (r *Registry) Has(key string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// ScopeOf returns the scope key was registered with.
func (r *Registry) ScopeOf(key string) (Scope, bool) {
	if r == nil {
		return 0, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[key]
	return e.scope, ok
}

// Binding describes one registration, for introspection.
type Binding struct {
	Key   string
	Scope Scope
	Type  string
}

// Bindings lists all registrations sorted by key.
func (r *Registry) Bindings() []Binding {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]Binding, 0, len(r.entries))
	for k, e := range r.entries {
		out = append(out, Binding{Key: k, Scope: e.scope, Type: e.typ})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Keys lists registered keys in sorted order.
func (r *Registry) Keys() []string {
	bs := r.Bindings()
	keys := make([]string, len(bs))
	for i, b := range bs {
		keys[i] = b.Key
	}
	return keys
}
