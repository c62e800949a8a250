package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategoryLink, SeverityError, "3 broken links")
	require.Equal(t, "link (error): 3 broken links", err.Error())

	wrapped := Wrap(errors.New("open failed"), CategoryFileSystem, SeverityFatal, "cannot read docs")
	require.Equal(t, "filesystem (fatal): cannot read docs: open failed", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(cause, CategoryConfig, SeverityFatal, "bad config")
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, fmt.Errorf("outer: %w", err), cause)
}

func TestWithContext(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "missing file").
		WithContext("path", "config.yaml")
	require.Equal(t, "config.yaml", err.Context["path"])
}

func TestCategoryHelpers(t *testing.T) {
	err := New(CategoryValidation, SeverityWarning, "odd value")
	require.True(t, IsCategory(err, CategoryValidation))
	require.False(t, IsCategory(err, CategoryConfig))
	require.Equal(t, CategoryValidation, GetCategory(err))
	require.Equal(t, CategoryInternal, GetCategory(errors.New("plain")))
}
