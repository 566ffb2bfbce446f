package probe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const gifJSON = `{
	"streams": [
		{
			"index": 0,
			"codec_name": "gif",
			"codec_type": "video",
			"width": 480,
			"height": 270,
			"nb_frames": "10",
			"avg_frame_rate": "10/1",
			"duration": "1.000000"
		}
	],
	"format": {
		"filename": "a.gif",
		"format_name": "gif",
		"duration": "1.000000",
		"size": "123456"
	}
}`

const pngJSON = `{
	"streams": [
		{
			"index": 0,
			"codec_name": "png",
			"codec_type": "video",
			"width": 300,
			"height": 900,
			"nb_frames": "1",
			"avg_frame_rate": "25/1"
		}
	],
	"format": {
		"filename": "b.png",
		"format_name": "png_pipe",
		"size": "4096"
	}
}`

func TestParseJSON_Gif(t *testing.T) {
	info, err := ParseJSON([]byte(gifJSON))
	require.NoError(t, err)

	require.Equal(t, "gif", info.Codec)
	require.Equal(t, 480, info.Width)
	require.Equal(t, 270, info.Height)
	require.Equal(t, 10, info.Frames)
	require.Equal(t, "10/1", info.SourceFPS)
	require.Equal(t, 1.0, info.Duration)
	require.Equal(t, int64(123456), info.Size)
	require.True(t, info.Landscape())
	require.True(t, info.Animated())
}

func TestParseJSON_Png(t *testing.T) {
	info, err := ParseJSON([]byte(pngJSON))
	require.NoError(t, err)

	require.Equal(t, "png", info.Codec)
	require.Equal(t, 300, info.Width)
	require.Equal(t, 900, info.Height)
	require.Equal(t, 1, info.Frames)
	require.False(t, info.Landscape())
	require.False(t, info.Animated())
}

func TestParseJSON_NoVideoStream(t *testing.T) {
	_, err := ParseJSON([]byte(`{"streams": [], "format": {"filename": "x"}}`))
	require.Error(t, err)
}

func TestParseJSON_MissingDimensions(t *testing.T) {
	_, err := ParseJSON([]byte(`{
		"streams": [{"index": 0, "codec_type": "video", "codec_name": "gif"}],
		"format": {"filename": "x.gif"}
	}`))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{not json`))
	require.Error(t, err)
}

func TestLandscape_SquareIsNotLandscape(t *testing.T) {
	info := &ImageInfo{Width: 512, Height: 512}
	require.False(t, info.Landscape())
}
