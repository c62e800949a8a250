package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docdirect/internal/builder"
	"git.home.luguber.info/inful/docdirect/internal/check"
	"git.home.luguber.info/inful/docdirect/internal/config"
	apperrors "git.home.luguber.info/inful/docdirect/internal/errors"
	"git.home.luguber.info/inful/docdirect/internal/observability"
	"git.home.luguber.info/inful/docdirect/internal/preview"
	"git.home.luguber.info/inful/docdirect/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Build struct {
		Output      string `short:"o" help:"Output directory for the rendered site"`
		Concurrency int    `short:"j" help:"Number of concurrent page renders"`
	} `cmd:"" help:"Render the docs tree into HTML fragments"`

	Check struct {
		Site string `short:"s" help:"Rendered site directory (defaults to the configured output)"`
	} `cmd:"" help:"Verify all internal links in a rendered site"`

	Preview struct {
		Addr string `help:"Listen address (defaults to the configured preview address)"`
	} `cmd:"" help:"Serve the site locally and rebuild on changes"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.Vars{"version": version.Version})

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Build.Output != "" {
			cfg.Output.Directory = CLI.Build.Output
		}
		if err := runBuild(cfg); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "check":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		siteDir := cfg.Output.Directory
		if CLI.Check.Site != "" {
			siteDir = CLI.Check.Site
		}
		if err := runCheck(siteDir); err != nil {
			slog.Error("Check failed", "error", err)
			os.Exit(1)
		}
	case "preview":
		cfg, err := loadConfig()
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Preview.Addr != "" {
			cfg.Preview.Addr = CLI.Preview.Addr
		}
		if err := runPreview(cfg); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration written", "path", CLI.Config)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CategoryConfig, apperrors.SeverityFatal,
			"configuration not usable").WithContext("path", CLI.Config)
	}
	return cfg, nil
}

func runBuild(cfg *config.Config) error {
	reg := prom.NewRegistry()
	opts := []builder.Option{builder.WithMetrics(observability.NewMetrics(reg))}
	if CLI.Build.Concurrency > 0 {
		opts = append(opts, builder.WithConcurrency(CLI.Build.Concurrency))
	}

	result, err := builder.New(cfg, opts...).Run(context.Background())
	if err != nil {
		return err
	}
	if result.Failed() {
		for _, pe := range result.Errors {
			fmt.Fprintf(os.Stderr, "%s: %s\n", pe.Path, pe.Err.Error())
		}
		return fmt.Errorf("%d of %d pages failed to render", len(result.Errors), result.Pages)
	}
	return nil
}

func runCheck(siteDir string) error {
	report, err := check.Site(siteDir, slog.Default())
	if err != nil {
		return err
	}
	if report.Failed() {
		for _, p := range report.Problems {
			fmt.Fprintln(os.Stderr, p.String())
		}
		return apperrors.New(apperrors.CategoryLink, apperrors.SeverityError,
			fmt.Sprintf("%d broken links in %d pages", len(report.Problems), report.Pages))
	}
	return nil
}

func runPreview(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prom.NewRegistry()
	b := builder.New(cfg, builder.WithMetrics(observability.NewMetrics(reg)))
	return preview.NewServer(cfg, b, reg).Run(ctx)
}
