package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/backmassage/webmpress/internal/config"
	"github.com/backmassage/webmpress/internal/planner"
)

// ExecResult holds the outcome of a single ffmpeg invocation. Stderr is
// always captured so a failure can be reported with the encoder's own
// diagnostics instead of a bare exit status.
type ExecResult struct {
	Stderr string
	Err    error
}

// Ok reports whether the invocation succeeded.
func (r ExecResult) Ok() bool { return r.Err == nil }

// Execute builds and runs the ffmpeg command for a file. When verbose is
// enabled, stderr is tee'd to os.Stderr in real time; otherwise it is
// captured silently and surfaced only on failure.
func Execute(ctx context.Context, cfg *config.Config, plan *planner.FilePlan) ExecResult {
	args := Build(cfg, plan)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
