// Package preview serves the rendered site locally and rebuilds it when
// the docs tree changes.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/docdirect/internal/builder"
	"git.home.luguber.info/inful/docdirect/internal/config"
	"git.home.luguber.info/inful/docdirect/internal/logfields"
)

// debounceDelay coalesces bursts of filesystem events into one rebuild.
const debounceDelay = 300 * time.Millisecond

// Server watches the docs directory and serves the rendered output.
type Server struct {
	cfg     *config.Config
	builder *builder.Builder
	reg     *prom.Registry
}

// NewServer creates a preview server. reg may be nil to disable the
// /metrics endpoint.
func NewServer(cfg *config.Config, b *builder.Builder, reg *prom.Registry) *Server {
	return &Server{cfg: cfg, builder: b, reg: reg}
}

// Run builds once, then serves and rebuilds until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	absDocs, err := resolveDocsDir(s.cfg)
	if err != nil {
		return err
	}

	if result, err := s.builder.Run(ctx); err != nil {
		return err
	} else if result.Failed() {
		// Serve anyway; broken pages show up again on the next rebuild.
		slog.Warn("Initial build has errors", logfields.Failed(len(result.Errors)))
	}

	httpServer := s.newHTTPServer()
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", "addr", s.cfg.Preview.Addr, "url", "http://"+s.cfg.Preview.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	watcher, err := newWatcher(absDocs)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	rebuildReq, trigger := newDebouncer()
	go s.rebuildWorker(ctx, rebuildReq)

	for {
		select {
		case <-ctx.Done():
			return shutdown(httpServer)
		case err := <-serveErr:
			return err
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

func (s *Server) newHTTPServer() *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.cfg.Output.Directory)))
	if s.reg != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	}
	return &http.Server{
		Addr:              s.cfg.Preview.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func resolveDocsDir(cfg *config.Config) (string, error) {
	absDocs, err := filepath.Abs(cfg.Docs.Dir)
	if err != nil {
		return "", fmt.Errorf("resolve docs dir: %w", err)
	}
	if st, statErr := os.Stat(absDocs); statErr != nil || !st.IsDir() {
		return "", fmt.Errorf("docs dir not found or not a directory: %s", absDocs)
	}
	return absDocs, nil
}

func newWatcher(absDocs string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := addDirsRecursive(watcher, absDocs); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// newDebouncer returns a rebuild channel and a trigger that coalesces
// rapid event bursts into a single request.
func newDebouncer() (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	rebuildReq := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(debounceDelay, func() {
			select {
			case rebuildReq <- struct{}{}:
			default:
			}
		})
	}
	return rebuildReq, trigger
}

// rebuildWorker serializes rebuilds; a request arriving mid-build queues
// exactly one follow-up run.
func (s *Server) rebuildWorker(ctx context.Context, rebuildReq chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			slog.Info("Change detected; rebuilding site")
			result, err := s.builder.Run(ctx)
			switch {
			case err != nil:
				slog.Warn("Rebuild failed", logfields.Error(err))
			case result.Failed():
				slog.Warn("Rebuild has page errors", logfields.Failed(len(result.Errors)))
				for _, pe := range result.Errors {
					slog.Warn("Page error", logfields.Page(pe.Path), logfields.Error(pe.Err))
				}
			default:
				slog.Info("Rebuild completed", logfields.Pages(result.Pages),
					logfields.DurationMS(float64(result.Elapsed.Milliseconds())))
			}
		}
	}
}

func (s *Server) handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", "path", ev.Name, "op", ev.Op.String())
	trigger()
}

func shutdown(httpServer *http.Server) error {
	slog.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}
	return nil
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", "dir", path, "error", err)
			}
		}
		return nil
	})
}

// shouldIgnoreEvent returns true for filesystem events that should not
// trigger rebuilds: hidden files, editor swap and temp files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, ".#") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	if base == "Thumbs.db" {
		return true
	}
	return false
}
