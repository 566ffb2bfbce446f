// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for ffmpeg, ffprobe, and the VP9 encoder.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/backmassage/webmpress/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrVP9TestFailed   = errors.New("libvpx-vp9 test encode failed (ffmpeg built without libvpx?)")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg,
// ffprobe, the VP9 encoders ffmpeg reports, and a short libvpx-vp9 test
// encode. Informational only; it does not stop on failure. Returns false
// when any required piece is missing.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkFfmpeg(cfg, log)
	ok = checkFfprobe(cfg, log) && ok
	listVP9Encoders(cfg, log)
	ok = checkVP9(cfg, log) && ok
	return ok
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(cfg *config.Config, log Logger) bool {
	if _, err := exec.LookPath(cfg.FfmpegBin); err != nil {
		log.Error("ffmpeg not found")
		return false
	}
	cmd := exec.Command(cfg.FfmpegBin, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return false
	}
	log.Success("ffmpeg: %s", firstLine(string(out)))
	return true
}

// checkFfprobe verifies ffprobe is on PATH and logs its version string.
func checkFfprobe(cfg *config.Config, log Logger) bool {
	if _, err := exec.LookPath(cfg.FfprobeBin); err != nil {
		log.Error("ffprobe not found")
		return false
	}
	cmd := exec.Command(cfg.FfprobeBin, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return false
	}
	log.Success("ffprobe: %s", firstLine(string(out)))
	return true
}

// listVP9Encoders lists all VP9-related encoders reported by ffmpeg.
func listVP9Encoders(cfg *config.Config, log Logger) {
	log.Info("VP9 encoders:")
	cmd := exec.Command(cfg.FfmpegBin, "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(strings.ToLower(line), "vp9") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkVP9 runs a minimal libvpx-vp9 encode to verify VP9 encoding works.
func checkVP9(cfg *config.Config, log Logger) bool {
	log.Info("Testing libvpx-vp9...")
	if runSilent(cfg.FfmpegBin, vp9TestArgs()...) {
		log.Success("libvpx-vp9 works")
		return true
	}
	log.Error("libvpx-vp9 test encode failed")
	return false
}

// CheckDeps is the pre-pipeline validation: it verifies that ffmpeg and
// ffprobe are on PATH and that a quick libvpx-vp9 encode succeeds.
// Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FfmpegBin); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath(cfg.FfprobeBin); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent(cfg.FfmpegBin, vp9TestArgs()...) {
		return ErrVP9TestFailed
	}
	return nil
}

// --- internal helpers ---

// vp9TestArgs returns the ffmpeg arguments for a minimal libvpx-vp9 test
// encode. Shared by checkVP9 and CheckDeps to avoid duplicating the list.
func vp9TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libvpx-vp9",
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}

// firstLine trims a command's output to its first line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return s
}
