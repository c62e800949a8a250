package resolver

import "fmt"

// ErrorKind classifies a structured resolution failure.
type ErrorKind int

const (
	// KindPropertyUndefined means the backing configuration property is absent.
	KindPropertyUndefined ErrorKind = iota
	// KindInvalidURL means the accumulated string failed URL validation.
	KindInvalidURL
	// KindPatternMismatch means a Collect pattern did not match and no
	// fallback was supplied.
	KindPatternMismatch
)

// Error is the structured failure recorded inside a URL under construction.
// It is never surfaced to users directly; directives wrap the reason text in
// their own error types with page context attached.
type Error struct {
	kind   ErrorKind
	reason string
}

// Kind returns the failure classification.
func (e *Error) Kind() ErrorKind { return e.kind }

// Reason returns the user-facing reason fragment, e.g.
// "property [github.base_url] is not defined".
func (e *Error) Reason() string { return e.reason }

func (e *Error) Error() string { return e.reason }

// PropertyUndefined records that the named configuration property is absent.
func PropertyUndefined(name string) *Error {
	return &Error{
		kind:   KindPropertyUndefined,
		reason: fmt.Sprintf("property [%s] is not defined", name),
	}
}

// InvalidProperty records that the named property holds a value that is not a
// well-formed URL.
func InvalidProperty(name, value string) *Error {
	return &Error{
		kind:   KindInvalidURL,
		reason: fmt.Sprintf("property [%s] contains an invalid URL [%s]", name, value),
	}
}

// NoScheme records that a literal URL text has no scheme component.
func NoScheme(text string) *Error {
	return &Error{
		kind:   KindInvalidURL,
		reason: fmt.Sprintf("URL [%s] has no scheme", text),
	}
}

// Mismatch records a Collect pattern failure with a ready-made reason, e.g.
// "[github.base_url] is not a project URL".
func Mismatch(reason string) *Error {
	return &Error{
		kind:   KindPatternMismatch,
		reason: reason,
	}
}
