// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overridden by [ApplyEnv], and then mutated by [ParseFlags]
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args).
	InputDir  string
	OutputDir string

	// Encoder settings.
	Quality    int    // VP9 CRF value. Default: 32. Third positional arg.
	FrameRate  int    // Target fps for animated inputs. Default: 30. Fourth positional arg.
	FfmpegBin  string // Default: "ffmpeg". Override via WEBMPRESS_FFMPEG.
	FfprobeBin string // Default: "ffprobe". Override via WEBMPRESS_FFPROBE.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: false (existing outputs are overwritten).

	// Display and logging.
	Verbose       bool
	ShowFileStats bool      // Default: true.
	ColorMode     ColorMode // Default: "auto".
	LogFile       string    // Optional log file path.
	CheckOnly     bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with built-in defaults. Used as the base
// before [ApplyEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		Quality:       32,
		FrameRate:     30,
		FfmpegBin:     "ffmpeg",
		FfprobeBin:    "ffprobe",
		DryRun:        false,
		SkipExisting:  false,
		Verbose:       false,
		ShowFileStats: true,
		ColorMode:     ColorAuto,
		CheckOnly:     false,
	}
}

// envConfig mirrors the env-overridable subset of Config. The env-default
// tags repeat the DefaultConfig values so an unset variable is a no-op.
type envConfig struct {
	Quality    int    `env:"WEBMPRESS_QUALITY" env-default:"32"`
	FrameRate  int    `env:"WEBMPRESS_FPS" env-default:"30"`
	FfmpegBin  string `env:"WEBMPRESS_FFMPEG" env-default:"ffmpeg"`
	FfprobeBin string `env:"WEBMPRESS_FFPROBE" env-default:"ffprobe"`
	LogFile    string `env:"WEBMPRESS_LOG"`
	ColorMode  string `env:"WEBMPRESS_COLOR" env-default:"auto"`
}

// ApplyEnv loads a .env file when present and applies WEBMPRESS_* variables
// on top of cfg. CLI flags parsed afterwards take precedence over both.
func ApplyEnv(cfg *Config) error {
	// A missing .env file is fine; variables may be set in the environment.
	_ = godotenv.Load()

	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	cfg.Quality = ec.Quality
	cfg.FrameRate = ec.FrameRate
	cfg.FfmpegBin = ec.FfmpegBin
	cfg.FfprobeBin = ec.FfprobeBin
	if ec.LogFile != "" {
		cfg.LogFile = ec.LogFile
	}

	mode, err := ParseColorMode(ec.ColorMode)
	if err != nil {
		return fmt.Errorf("WEBMPRESS_COLOR: %w", err)
	}
	cfg.ColorMode = mode
	return nil
}

// ParseColorMode converts a user-supplied string into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and, when not in CheckOnly mode, requires both
// directory arguments. Quality and frame rate are deliberately not
// range-checked; out-of-range values are passed through to ffmpeg, which
// rejects them itself.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.FfmpegBin == "" || c.FfprobeBin == "" {
		return errors.New("ffmpeg and ffprobe binary names must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("need input_dir and output_dir")
	}
	return nil
}
