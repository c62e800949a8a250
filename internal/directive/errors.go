package directive

import "fmt"

// LinkError is raised when a directive cannot materialize an external link.
// The message wording is a compatibility surface; do not reformat.
type LinkError struct {
	// Source is the directive source text as written.
	Source string
	// Page is the path of the referencing page.
	Page string
	// Reason is the structured resolver failure reason.
	Reason string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("Failed to resolve [%s] referenced from [%s] because %s", e.Source, e.Page, e.Reason)
}

// UnknownPageError is raised when an internal reference points at a page that
// is not part of the build.
type UnknownPageError struct {
	// Path is the resolved target path that does not exist.
	Path string
	// Page is the path of the referencing page.
	Page string
}

func (e *UnknownPageError) Error() string {
	return fmt.Sprintf("Unknown page [%s] referenced from [%s]", e.Path, e.Page)
}
