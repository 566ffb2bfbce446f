package probe

// ImageInfo is the fully parsed output of a single ffprobe JSON call against
// a raster input. Dimensions come from the first video stream (GIF and PNG
// inputs both expose one).
type ImageInfo struct {
	Codec      string // e.g. "gif", "png"
	Width      int
	Height     int
	Frames     int     // 0 when ffprobe does not report a frame count.
	SourceFPS  string  // avg_frame_rate, e.g. "10/1". Empty for stills.
	Duration   float64 // seconds; 0 when unknown.
	Size       int64   // container byte size.
	FormatName string
}

// Landscape reports whether the decoded aspect ratio (width/height) is
// greater than 1. Square images count as portrait: the scale rule pins
// their height.
func (i *ImageInfo) Landscape() bool {
	return i.Width > i.Height
}

// Animated reports whether the input carries more than one frame.
func (i *ImageInfo) Animated() bool {
	return i.Frames > 1
}
