package planner

// Kind classifies an input by its (lowercased) extension.
type Kind int

const (
	KindUnsupported Kind = iota
	KindAnimated         // .gif: full frame sequence, resampled to the target rate.
	KindStatic           // .png: single output frame.
)

// String returns the label used in log output.
func (k Kind) String() string {
	switch k {
	case KindAnimated:
		return "animated"
	case KindStatic:
		return "static"
	}
	return "unsupported"
}

// FilePlan holds the complete set of decisions for converting a single input
// file. It is produced by BuildPlan and consumed by the ffmpeg package to
// construct command arguments.
type FilePlan struct {
	Kind Kind

	// Target dimensions from the scale rule (longest side = MaxDimension).
	TargetWidth  int
	TargetHeight int

	// Filter is the assembled -vf chain (scale, plus fps for animated inputs).
	Filter string

	// Encoder settings.
	Quality     int  // VP9 CRF; bitrate target stays unconstrained (-b:v 0).
	FrameRate   int  // Target fps; only applied to animated inputs.
	SingleFrame bool // Pin output to exactly one frame (static inputs).

	// Paths.
	InputPath  string
	OutputPath string
}
