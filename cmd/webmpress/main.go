// Command webmpress is the CLI entrypoint for the batch GIF/PNG to WebM
// converter.
//
// It parses flags and environment overrides, validates configuration and
// paths, and either runs system diagnostics (--check) or the conversion
// pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/webmpress/internal/check"
	"github.com/backmassage/webmpress/internal/config"
	"github.com/backmassage/webmpress/internal/display"
	"github.com/backmassage/webmpress/internal/logging"
	"github.com/backmassage/webmpress/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" (no make), these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "webmpress: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "webmpress: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "webmpress: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webmpress: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Resolve and validate paths. The input directory must already exist;
	// the output directory is created (with parents) only after that check,
	// so a missing input never leaves an empty output tree behind.
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		log.Error("Input not found: %s", cfg.InputDir)
		return 1
	}
	cfg.InputDir = inputAbs
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %s", cfg.OutputDir)
		return 1
	}

	log.Info("=== webmpress v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("Quality: %d, fps: %d", cfg.Quality, cfg.FrameRate)
	log.Info("")

	// Fail fast if ffmpeg/ffprobe or the VP9 encoder are unavailable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline stops instead of starting further files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	// Phase 4: Run pipeline (discover → probe → plan → execute).
	stats := pipeline.Run(ctx, &cfg, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// absPath returns the absolute path with symlinks resolved. Fails when the
// path does not exist, which doubles as the input-directory existence check.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
