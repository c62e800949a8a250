package preview

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docdirect/internal/config"
)

func TestShouldIgnoreEvent(t *testing.T) {
	require.True(t, shouldIgnoreEvent("/tmp/.hidden.md"))
	require.True(t, shouldIgnoreEvent("/tmp/#index.md#"))
	require.True(t, shouldIgnoreEvent("/tmp/index.md.swp"))
	require.True(t, shouldIgnoreEvent("/tmp/.DS_Store"))
	require.True(t, shouldIgnoreEvent("/tmp/index.md~"))
	require.False(t, shouldIgnoreEvent("/tmp/index.md"))
}

func TestResolveDocsDirMissing(t *testing.T) {
	cfg := &config.Config{Docs: config.DocsConfig{Dir: t.TempDir() + "/does-not-exist"}}
	_, err := resolveDocsDir(cfg)
	require.Error(t, err)
}

func TestResolveDocsDirReturnsAbsolute(t *testing.T) {
	docs := t.TempDir()
	cfg := &config.Config{Docs: config.DocsConfig{Dir: docs}}
	abs, err := resolveDocsDir(cfg)
	require.NoError(t, err)
	require.Equal(t, docs, abs)
}

func TestDebouncerCoalesces(t *testing.T) {
	rebuildReq, trigger := newDebouncer()
	for range 10 {
		trigger()
	}
	// A burst resolves to exactly one queued request.
	<-rebuildReq
	select {
	case <-rebuildReq:
		t.Fatal("expected a single rebuild request")
	default:
	}
}
