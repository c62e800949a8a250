package directive

import "git.home.luguber.info/inful/docdirect/internal/foundation"

// Attributes is the read-only key/value and positional-value store attached
// to a directive node. Directives that declare no attribute interest simply
// never look.
type Attributes struct {
	pairs   map[string]string
	values  []string
	classes []string
	ids     []string
}

// NewAttributes builds an attribute bag. The maps and slices are not copied;
// callers hand over ownership at construction.
func NewAttributes(pairs map[string]string, values, classes, ids []string) Attributes {
	return Attributes{pairs: pairs, values: values, classes: classes, ids: ids}
}

// Get returns the value of a named attribute.
func (a Attributes) Get(key string) foundation.Option[string] {
	v, ok := a.pairs[key]
	if !ok {
		return foundation.None[string]()
	}
	return foundation.Some(v)
}

// GetOrElse returns the value of a named attribute or a fallback.
func (a Attributes) GetOrElse(key, fallback string) string {
	return a.Get(key).UnwrapOr(fallback)
}

// Values returns the positional (bare) attribute values in order.
func (a Attributes) Values() []string { return a.values }

// Classes returns the `.class` shorthand values in order.
func (a Attributes) Classes() []string { return a.classes }

// Identifiers returns the `#id` shorthand values in order. Snippet directives
// read these as region labels.
func (a Attributes) Identifiers() []string { return a.ids }

// IsEmpty reports whether the bag carries nothing at all.
func (a Attributes) IsEmpty() bool {
	return len(a.pairs) == 0 && len(a.values) == 0 && len(a.classes) == 0 && len(a.ids) == 0
}
