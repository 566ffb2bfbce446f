// Package pipeline orchestrates file discovery, per-file conversion, and
// batch summary reporting. The batch is fail-fast: the first encoder failure
// halts all remaining work.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/webmpress/internal/config"
	"github.com/backmassage/webmpress/internal/display"
	"github.com/backmassage/webmpress/internal/ffmpeg"
	"github.com/backmassage/webmpress/internal/logging"
	"github.com/backmassage/webmpress/internal/naming"
	"github.com/backmassage/webmpress/internal/planner"
	"github.com/backmassage/webmpress/internal/probe"
)

// Run is the top-level batch entry point. It discovers matching files and
// converts them strictly sequentially; one ffmpeg process runs to completion
// before the next begins. Returns aggregate stats; Failed > 0 means the
// batch was halted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	stats.Total = len(files)
	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			stats.Failed++
			return stats
		}

		if !processFile(ctx, cfg, log, path, &stats) {
			stats.Failed++
			log.Error("Halting batch after failure on %s", filepath.Base(path))
			return stats
		}
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one input file: classify → name → probe → plan →
// execute. Returns false on any failure, which halts the batch.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
) bool {
	basename := filepath.Base(path)

	// Discovery already filters to supported extensions; this guard only
	// matters if the allow-lists ever drift apart.
	kind := planner.Classify(path)
	if kind == planner.KindUnsupported {
		log.Debug(cfg.Verbose, "Skipping unsupported file: %s", basename)
		stats.Skipped++
		return true
	}

	outputPath := naming.OutputPath(path, cfg.OutputDir)

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			return true
		}
	}

	log.Info("[%d/%d] Converting: %s -> %s", stats.Current, stats.Total, basename, filepath.Base(outputPath))

	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		return false
	}

	info, err := probe.Probe(ctx, cfg.FfprobeBin, path)
	if err != nil {
		log.Error("Cannot probe file (possibly corrupt): %v", err)
		return false
	}

	plan := planner.BuildPlan(cfg, path, outputPath, info)

	if cfg.ShowFileStats {
		logFileStats(log, info, plan)
	}

	if cfg.DryRun {
		log.Success("[DRY] Would convert (%s, -vf %q)", plan.Kind, plan.Filter)
		stats.Converted++
		return true
	}

	start := time.Now()
	result := ffmpeg.Execute(ctx, cfg, plan)
	if !result.Ok() {
		log.Error("Conversion failed: %v", result.Err)
		logStderr(log, result.Stderr)
		os.Remove(outputPath)
		return false
	}

	elapsed := time.Since(start)
	inSize := fi.Size()
	var outSize int64
	if outInfo, err := os.Stat(outputPath); err == nil {
		outSize = outInfo.Size()
	}

	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Converted++

	log.Success("Converted %s in %.1fs (%s -> %s)",
		filepath.Base(outputPath), elapsed.Seconds(),
		display.FormatBytes(inSize), display.FormatBytes(outSize))
	return true
}

// logStderr prints the tail of ffmpeg's captured stderr after a failure.
func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Run ID: %s", uuid.NewString())
	log.Info("Found %d files", stats.Total)
	log.Info("Codec: VP9 (constant quality, CRF %d), container: WebM, no audio", cfg.Quality)
	log.Info("Scale: longest side %dpx (Lanczos), GIF frame rate: %d fps, PNG: single frame",
		planner.MaxDimension, cfg.FrameRate)
	if cfg.SkipExisting {
		log.Info("Existing outputs: skip")
	} else {
		log.Info("Existing outputs: overwrite")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	fmt.Println()
}

func logFileStats(log *logging.Logger, info *probe.ImageInfo, plan *planner.FilePlan) {
	frames := "?"
	if info.Frames > 0 {
		frames = fmt.Sprintf("%d", info.Frames)
	}
	log.Info("  Source: %s | %s frames | %s | %s",
		display.FormatDimensions(info.Width, info.Height), frames,
		display.FormatBytes(info.Size), info.Codec)
	log.Info("  Target: %s (%s)",
		display.FormatDimensions(plan.TargetWidth, plan.TargetHeight), plan.Kind)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Success("All conversions complete: %d converted, %d skipped", stats.Converted, stats.Skipped)

	if cfg.DryRun {
		log.Info("  Total space delta: n/a (dry run)")
		return
	}
	if stats.Converted == 0 {
		return
	}

	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Info("  Total space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warn("  Total space saved: -%s (overall output is larger)",
			display.FormatBytes(-saved))
	}
}
