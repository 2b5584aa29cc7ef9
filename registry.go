package ormbridge

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoConverter is returned when a source field type has no registered converter
var ErrNoConverter = errors.New("no converter found")

// Registry maps a source field type to its converter. Registration is expected
// to settle before conversions run; lookups are read only and safe to run
// concurrently once it has.
type Registry struct {
	converters map[reflect.Type]*FieldConverter
}

// NewRegistry creates a registry with supplied converters
func NewRegistry(converters ...*FieldConverter) *Registry {
	ret := &Registry{converters: map[reflect.Type]*FieldConverter{}}
	ret.Register(converters...)
	return ret
}

// Register adds converters; the last registration for a source type wins
func (r *Registry) Register(converters ...*FieldConverter) {
	for _, converter := range converters {
		r.converters[converter.SourceType()] = converter
	}
}

// Lookup returns the converter registered for the exact source type,
// with no assignability or element type fallback
func (r *Registry) Lookup(sourceType reflect.Type) (*FieldConverter, error) {
	converter, ok := r.converters[sourceType]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoConverter, sourceType.String())
	}
	return converter, nil
}

var defaultRegistry = NewRegistry(builtins()...)

// Default returns the shared registry populated with built-in converters
func Default() *Registry {
	return defaultRegistry
}

// RegisterConverters registers converters on the shared registry
func RegisterConverters(converters ...*FieldConverter) {
	defaultRegistry.Register(converters...)
}
