// Package ffmpeg builds and executes the per-file ffmpeg command with an
// explicit result type carrying captured diagnostics.
package ffmpeg

import (
	"strconv"

	"github.com/backmassage/webmpress/internal/config"
	"github.com/backmassage/webmpress/internal/planner"
)

// Build constructs the complete ffmpeg argument slice for a file. The
// command always produces an audio-free VP9 WebM in constant-quality mode
// (-crf with -b:v 0, no bitrate cap) and overwrites existing output (-y).
// Static plans additionally pin the output to a single frame.
func Build(cfg *config.Config, plan *planner.FilePlan) []string {
	args := make([]string, 0, 24)

	// --- Preamble ---
	args = append(args, cfg.FfmpegBin, "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input ---
	args = append(args, "-i", plan.InputPath)

	// --- Video filter chain ---
	if plan.Filter != "" {
		args = append(args, "-vf", plan.Filter)
	}

	// --- Video codec: VP9, constant quality, no audio ---
	args = append(args,
		"-c:v", "libvpx-vp9",
		"-crf", strconv.Itoa(plan.Quality),
		"-b:v", "0",
		"-an",
	)

	// --- Frame pinning (static inputs) ---
	if plan.SingleFrame {
		args = append(args, "-frames:v", "1")
	}

	// --- Output ---
	args = append(args, plan.OutputPath)

	return args
}
