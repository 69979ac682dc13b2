package di

import "fmt"

// DependencyKey names a dependency recorded in a Service's Deps bag.
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// Service pairs a constructed value with the dependencies injected into it.
//
// Deps is keyed by DependencyKey and holds the dependency pointers exactly as
// they were handed to Injecting, so wiring can be inspected afterwards.
type Service[T any] struct {
	Val  *T
	Deps map[DependencyKey]any
}

// Init calls ctor and wraps the result with an empty Deps bag.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the wrapped value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector wires something into a Service in place.
type Injector[T any] func(*Service[T]) error

// With applies inj. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	return s, inj(s)
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep.Val under key and hands it
// to bind together with the target value.
//
// The injector fails with ErrNilTarget, NilDependencyServiceError,
// NilBindError or DuplicateKeyError, checked in that order. Nothing is
// recorded or bound when it fails.
func Injecting[T any, D any](key DependencyKey, dep *Service[D], bind func(target *T, dependency *D)) Injector[T] {
	return func(s *Service[T]) error {
		switch {
		case s == nil || s.Val == nil:
			return ErrNilTarget
		case dep == nil || dep.Val == nil:
			return NilDependencyServiceError{Key: key}
		case bind == nil:
			return NilBindError{Key: key}
		}

		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, ok := s.Deps[key]; ok {
			return DuplicateKeyError{Key: key}
		}

		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// Has reports whether anything is recorded under key.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// GetAs returns the dependency under key as *D. ok is false when the key is
// missing or holds another type.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	d, err := TryGetAs[T, D](s, key)
	return d, err == nil
}

// TryGetAs is GetAs with the reason for failure:
// MissingDependencyError or WrongTypeDependencyError.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil || s.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: fmt.Sprintf("%T", raw)}
	}
	return d, nil
}
