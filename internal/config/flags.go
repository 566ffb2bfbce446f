package config

// This file implements CLI flag parsing and help text.
// Positional arguments follow the flags: input_dir, output_dir, and the
// optional quality and fps values.

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseFlags parses args (normally os.Args[1:]) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (unknown flag,
// missing positional args, non-numeric quality/fps).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("webmpress", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	// Color overrides are captured as plain bools and applied after Parse so
	// the ColorMode default from DefaultConfig/ApplyEnv holds unless set.
	var forceColor, noColor, showVersion, showHelp bool

	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not convert")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", false, "Skip files whose output already exists")
	var noStats bool
	fs.BoolVar(&noStats, "no-stats", false, "Hide per-file source stats")
	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (show ffmpeg stderr)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if noStats {
		cfg.ShowFileStats = false
	}
	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	if showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "webmpress v"+version)
		os.Exit(0)
	}

	if err := parsePositionalArgs(fs, cfg); err != nil {
		fs.Usage()
		return err
	}
	return nil
}

// parsePositionalArgs sets InputDir, OutputDir and the optional quality and
// frame-rate values from the 2–4 positional args (skipped in CheckOnly mode).
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) < 2 || len(args) > 4 {
		return fmt.Errorf("need input_dir and output_dir (optionally quality and fps)")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	cfg.OutputDir = NormalizeDirArg(args[1])

	if len(args) >= 3 {
		q, err := parseInt(args[2], "quality")
		if err != nil {
			return err
		}
		cfg.Quality = q
	}
	if len(args) == 4 {
		r, err := parseInt(args[3], "fps")
		if err != nil {
			return err
		}
		cfg.FrameRate = r
	}
	return nil
}

// parseInt parses a string as an integer for the quality/fps positionals;
// returns a clear error on failure.
func parseInt(s, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number (got %q)", name, s)
	}
	return n, nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "webmpress v" + version + " — batch GIF/PNG to WebM converter"},
		{"", ""},
		{"  webmpress [OPTIONS] <input_dir> <output_dir> [quality] [fps]", ""},
		{"", ""},
		{"Arguments", ""},
		{"  quality", "VP9 constant-quality CRF (default: 32)"},
		{"  fps", "Target frame rate for GIF inputs (default: 30)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "Preview only; do not convert"},
		{"  --skip-existing", "Skip files whose output already exists"},
		{"", ""},
		{"Display", ""},
		{"  --no-stats", "Hide per-file source stats"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (show ffmpeg stderr)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, VP9)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
