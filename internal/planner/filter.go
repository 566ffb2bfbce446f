package planner

import (
	"strconv"
	"strings"
)

// ScaleFilter is a typed representation of one ffmpeg scale filter with
// fixed output dimensions and Lanczos resampling. Building the expression
// from fields (rather than interpolating user input into a template string)
// keeps the scale-rule branch testable in isolation.
type ScaleFilter struct {
	Width  int
	Height int
}

// String renders the filter, e.g. "scale=512:288:flags=lanczos".
func (s ScaleFilter) String() string {
	return "scale=" + strconv.Itoa(s.Width) + ":" + strconv.Itoa(s.Height) + ":flags=lanczos"
}

// FilterChain assembles the -vf argument for one file: the mandatory scale
// step plus an optional frame-rate conversion.
type FilterChain struct {
	Scale ScaleFilter
	FPS   int // 0 disables frame-rate conversion.
}

// String renders the comma-joined chain, e.g.
// "scale=512:288:flags=lanczos,fps=30".
func (c FilterChain) String() string {
	parts := []string{c.Scale.String()}
	if c.FPS > 0 {
		parts = append(parts, "fps="+strconv.Itoa(c.FPS))
	}
	return strings.Join(parts, ",")
}
