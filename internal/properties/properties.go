// Package properties holds the flat configuration property map consumed by
// directive handlers. Property names are dotted (e.g. "github.base_url",
// "extref.rfc.base_url"); values are plain strings supplied by the host
// configuration per render context.
package properties

import (
	"sort"

	"git.home.luguber.info/inful/docdirect/internal/foundation"
)

// Map is an immutable snapshot of configuration properties. The zero value
// is an empty map. Maps are safe to share across concurrent page renders.
type Map struct {
	values map[string]string
}

// NewMap copies the supplied values into an immutable Map.
func NewMap(values map[string]string) Map {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Map{values: copied}
}

// Merged returns a new Map with overrides layered over m. The receiver is
// untouched; an empty overrides map returns the receiver unchanged.
func (m Map) Merged(overrides map[string]string) Map {
	if len(overrides) == 0 {
		return m
	}
	merged := make(map[string]string, len(m.values)+len(overrides))
	for k, v := range m.values {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return Map{values: merged}
}

// Get returns the value for name, or None when the property is not defined.
// An empty string value is a defined property.
func (m Map) Get(name string) foundation.Option[string] {
	v, ok := m.values[name]
	if !ok {
		return foundation.None[string]()
	}
	return foundation.Some(v)
}

// Has reports whether name is defined.
func (m Map) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Keys returns all property names in lexical order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of defined properties.
func (m Map) Len() int { return len(m.values) }
