package di

import "fmt"

// Registry resolves values by name.
type Registry interface {
	Resolve(key string) (val any, ok bool, err error)
}

// MapRegistry is an in-memory Registry that remembers insertion order.
//
// Providing an existing key replaces its value but keeps its position.
type MapRegistry struct {
	items map[string]any
	order []string
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores val under key and returns the registry for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	if _, ok := r.items[key]; !ok {
		r.order = append(r.order, key)
	}
	r.items[key] = val
	return r
}

// Resolve implements Registry. A panic while resolving is returned as an
// error wrapping ErrRegistryPanic.
func (r *MapRegistry) Resolve(key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val, ok = nil, false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	val, ok = r.items[key]
	return val, ok, nil
}

// Keys returns the registered keys in the order they were first provided.
func (r *MapRegistry) Keys() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ResolveAs resolves key and asserts the value to V.
//
// ok is false when the key is missing or holds another type; err is only
// set when the registry itself failed.
func ResolveAs[V any](r Registry, key string) (V, bool, error) {
	var zero V
	raw, ok, err := r.Resolve(key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, ok := raw.(V)
	if !ok {
		return zero, false, nil
	}
	return v, true, nil
}
