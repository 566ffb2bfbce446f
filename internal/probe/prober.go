// Package probe provides ffprobe-based inspection of the source images and
// a typed result structure. A single JSON call per file yields everything
// the planner needs: decoded dimensions, frame count, and source frame rate.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result.
func Probe(ctx context.Context, ffprobeBin, path string) (*ImageInfo, error) {
	cmd := exec.CommandContext(ctx, ffprobeBin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into an ImageInfo.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ImageInfo, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildInfo(&raw)
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
}

type ffprobeStream struct {
	Index        int    `json:"index"`
	CodecName    string `json:"codec_name"`
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	NbFrames     string `json:"nb_frames"`
	AvgFrameRate string `json:"avg_frame_rate"`
	Duration     string `json:"duration"`
}

// --- Conversion from wire types to the domain type ---

func buildInfo(raw *ffprobeOutput) (*ImageInfo, error) {
	var video *ffprobeStream
	for i := range raw.Streams {
		if raw.Streams[i].CodecType == "video" {
			video = &raw.Streams[i]
			break
		}
	}
	if video == nil {
		return nil, fmt.Errorf("no video stream in %q", raw.Format.Filename)
	}
	if video.Width <= 0 || video.Height <= 0 {
		return nil, fmt.Errorf("no decoded dimensions for %q", raw.Format.Filename)
	}

	duration := parseFloat(raw.Format.Duration)
	if duration == 0 {
		duration = parseFloat(video.Duration)
	}

	return &ImageInfo{
		Codec:      video.CodecName,
		Width:      video.Width,
		Height:     video.Height,
		Frames:     parseInt(video.NbFrames),
		SourceFPS:  video.AvgFrameRate,
		Duration:   duration,
		Size:       parseInt64(raw.Format.Size),
		FormatName: raw.Format.FormatName,
	}, nil
}

// --- Numeric parsing helpers (ffprobe returns numbers as strings) ---

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
