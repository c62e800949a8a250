package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPage       = "page"
	KeyDirective  = "directive"
	KeyStage      = "stage"
	KeyPages      = "pages"
	KeyLinks      = "links"
	KeyFailed     = "failed"
	KeyOutput     = "output"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Page(path string) slog.Attr      { return slog.String(KeyPage, path) }
func Directive(name string) slog.Attr { return slog.String(KeyDirective, name) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Links(n int) slog.Attr           { return slog.Int(KeyLinks, n) }
func Failed(n int) slog.Attr          { return slog.Int(KeyFailed, n) }
func Output(path string) slog.Attr    { return slog.String(KeyOutput, path) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
