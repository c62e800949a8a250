// Package resolver builds and validates external URLs for link directives.
//
// A URL value accumulates a string form through Append, WithFragment and
// Collect. Operations never fail in place: the first recorded error rides
// along and short-circuits everything after it, and is only surfaced when the
// caller materializes the final string with Resolve. This keeps directive
// handler code linear; there is exactly one error check, at the end.
package resolver

import (
	"net/url"
	"strings"

	"git.home.luguber.info/inful/docdirect/internal/properties"
)

// URL is an immutable external URL under construction: the accumulated string
// form plus a pending first-error. The zero value is an empty literal URL.
type URL struct {
	base string
	prop string // backing property name, empty for literal sources
	err  *Error
}

// Literal creates a URL resolver from a literal string.
func Literal(base string) URL {
	return URL{base: base}
}

// Failed creates a URL resolver already in error state.
func Failed(err *Error) URL {
	return URL{err: err}
}

// FromProperty creates a URL resolver backed by the named configuration
// property. An absent property puts the resolver into error state
// immediately; a present value is only syntax-checked when Resolve is called,
// so the two failures stay distinguishable.
func FromProperty(props properties.Map, name string) URL {
	v, ok := props.Get(name).Get()
	if !ok {
		return Failed(PropertyUndefined(name))
	}
	return URL{base: v, prop: name}
}

// Property returns the backing property name, or "" for literal sources.
func (u URL) Property() string { return u.prop }

// String returns the current accumulated form without validation.
func (u URL) String() string { return u.base }

// Err returns the pending error, or nil.
func (u URL) Err() *Error { return u.err }

// Append joins a path segment onto the accumulated URL with exactly one
// slash. No-op when already in error state.
func (u URL) Append(segment string) URL {
	if u.err != nil {
		return u
	}
	joined := strings.TrimSuffix(u.base, "/")
	seg := strings.TrimPrefix(segment, "/")
	u.base = joined + "/" + seg
	return u
}

// WithFragment sets or replaces the fragment component.
func (u URL) WithFragment(fragment string) URL {
	if u.err != nil {
		return u
	}
	base := u.base
	if i := strings.IndexByte(base, '#'); i >= 0 {
		base = base[:i]
	}
	u.base = base + "#" + fragment
	return u
}

// Collect applies a partial function to the accumulated string form. When the
// function reports no match the resolver transitions to error state with the
// supplied mismatch error. Used for the project/tree URL shape checks, which
// are plain string pattern tests, not structured URL inspection.
func (u URL) Collect(apply func(current string) (string, bool), mismatch *Error) URL {
	if u.err != nil {
		return u
	}
	mapped, ok := apply(u.base)
	if !ok {
		u.err = mismatch
		return u
	}
	u.base = mapped
	return u
}

// Resolve materializes and validates the accumulated string as a well-formed
// absolute URL. The pending error, if any, wins over validation.
func (u URL) Resolve() (string, *Error) {
	if u.err != nil {
		return "", u.err
	}
	parsed, err := url.Parse(u.base)
	if err != nil || !parsed.IsAbs() {
		if u.prop != "" {
			return "", InvalidProperty(u.prop, u.base)
		}
		return "", NoScheme(u.base)
	}
	return u.base, nil
}
