package resolver

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docdirect/internal/properties"
)

func TestLiteral_AppendAndResolve(t *testing.T) {
	u := Literal("https://github.com/acme/widget").Append("issues").Append("1")
	s, err := u.Resolve()
	require.Nil(t, err)
	require.Equal(t, "https://github.com/acme/widget/issues/1", s)
}

func TestAppend_NormalizesSlashes(t *testing.T) {
	u := Literal("https://example.com/docs/").Append("/guide")
	require.Equal(t, "https://example.com/docs/guide", u.String())
}

func TestWithFragment_SetsAndReplaces(t *testing.T) {
	u := Literal("https://example.com/api").WithFragment("one").WithFragment("two")
	s, err := u.Resolve()
	require.Nil(t, err)
	require.Equal(t, "https://example.com/api#two", s)
}

func TestCollect_MatchRewrites(t *testing.T) {
	tree := regexp.MustCompile(`^(.*)/tree/[^/]+/?$`)
	u := Literal("https://github.com/acme/widget/tree/v0.2.1").Collect(
		func(s string) (string, bool) {
			if tree.MatchString(s) {
				return s, true
			}
			return "", false
		},
		Mismatch("[github.base_url] is not a project or versioned tree URL"),
	)
	require.Nil(t, u.Err())
}

func TestCollect_MismatchRecordsError(t *testing.T) {
	u := Literal("https://example.com").Collect(
		func(string) (string, bool) { return "", false },
		Mismatch("[x] is not a project URL"),
	)
	_, err := u.Resolve()
	require.NotNil(t, err)
	require.Equal(t, KindPatternMismatch, err.Kind())
	require.Equal(t, "[x] is not a project URL", err.Reason())
}

func TestFirstErrorWins(t *testing.T) {
	first := Mismatch("first failure")
	u := Failed(first).
		Append("ignored").
		WithFragment("ignored").
		Collect(func(string) (string, bool) { return "", false }, Mismatch("second failure"))
	_, err := u.Resolve()
	require.Same(t, first, err)
}

func TestResolve_NoScheme(t *testing.T) {
	_, err := Literal("example.com/path").Resolve()
	require.NotNil(t, err)
	require.Equal(t, KindInvalidURL, err.Kind())
	require.Equal(t, "URL [example.com/path] has no scheme", err.Reason())
}

func TestFromProperty_Undefined(t *testing.T) {
	props := properties.NewMap(nil)
	u := FromProperty(props, "github.base_url")
	_, err := u.Resolve()
	require.NotNil(t, err)
	require.Equal(t, KindPropertyUndefined, err.Kind())
	require.Equal(t, "property [github.base_url] is not defined", err.Reason())
}

func TestFromProperty_InvalidValue(t *testing.T) {
	props := properties.NewMap(map[string]string{"github.base_url": "not a url"})
	u := FromProperty(props, "github.base_url")
	_, err := u.Resolve()
	require.NotNil(t, err)
	require.Equal(t, KindInvalidURL, err.Kind())
	require.Equal(t, "property [github.base_url] contains an invalid URL [not a url]", err.Reason())
}

func TestFromProperty_ValidValueResolves(t *testing.T) {
	props := properties.NewMap(map[string]string{"github.base_url": "https://github.com/acme/widget"})
	u := FromProperty(props, "github.base_url")
	s, err := u.Append("issues").Append("42").Resolve()
	require.Nil(t, err)
	require.Equal(t, "https://github.com/acme/widget/issues/42", s)
}

func TestURLValueSemantics(t *testing.T) {
	// Operations return new values; the original is untouched.
	base := Literal("https://example.com")
	_ = base.Append("a")
	require.Equal(t, "https://example.com", base.String())
}
