package di

import (
	"errors"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil service
	// or to a service whose Val is nil.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrRegistryPanic wraps a panic recovered inside Registry.Resolve.
	ErrRegistryPanic = errors.New("di: panic during registry resolve")
)

// DuplicateKeyError is returned when a key is injected twice into the same service.
type DuplicateKeyError struct{ Key DependencyKey }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned by TryGetAs when nothing is recorded under Key.
type MissingDependencyError struct{ Key DependencyKey }

func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned by TryGetAs when Key holds a value of
// another type. GotType is the dynamic type of the stored value.
type WrongTypeDependencyError struct {
	Key     DependencyKey
	GotType string
}

func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError reports a nil dependency service (or nil Val) for Key.
type NilDependencyServiceError struct{ Key DependencyKey }

func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// NilBindError reports a nil bind function for Key.
type NilBindError struct{ Key DependencyKey }

func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}
