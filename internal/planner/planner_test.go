package planner

import (
	"testing"

	"github.com/backmassage/webmpress/internal/config"
	"github.com/backmassage/webmpress/internal/probe"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Kind
	}{
		{"gif lowercase", "a.gif", KindAnimated},
		{"gif uppercase", "A.GIF", KindAnimated},
		{"gif mixed case", "anim.Gif", KindAnimated},
		{"png lowercase", "b.png", KindStatic},
		{"png uppercase", "B.PNG", KindStatic},
		{"full path", "/input/dir/c.gif", KindAnimated},
		{"txt unsupported", "notes.txt", KindUnsupported},
		{"jpeg unsupported", "photo.jpg", KindUnsupported},
		{"webm unsupported", "done.webm", KindUnsupported},
		{"no extension", "Makefile", KindUnsupported},
		{"extension only in dir", "/input/a.gif/file", KindUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.path)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		wantW      int
		wantH      int
	}{
		{"landscape 16:9", 1920, 1080, 512, 288},
		{"landscape 4:3", 640, 480, 512, 384},
		{"portrait 9:16", 1080, 1920, 288, 512},
		{"square", 512, 512, 512, 512},
		{"small square upscaled", 10, 10, 512, 512},
		{"small landscape upscaled", 100, 30, 512, 154},
		{"small portrait upscaled", 30, 100, 154, 512},
		{"odd height rounds even", 509, 512, 510, 512},
		{"near-square portrait rounds up", 511, 512, 512, 512},
		{"extreme landscape clamps to 2", 1000, 1, 512, 2},
		{"extreme portrait clamps to 2", 1, 1000, 2, 512},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := FitDimensions(tt.srcW, tt.srcH)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("FitDimensions(%d, %d) = %dx%d, want %dx%d",
					tt.srcW, tt.srcH, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitDimensions_LongestSideInvariant(t *testing.T) {
	cases := [][2]int{{1920, 1080}, {1080, 1920}, {512, 512}, {3, 7}, {7, 3}, {4000, 1}}
	for _, c := range cases {
		w, h := FitDimensions(c[0], c[1])
		longest := w
		if h > longest {
			longest = h
		}
		if longest != MaxDimension {
			t.Errorf("FitDimensions(%d, %d) = %dx%d: longest side %d, want %d",
				c[0], c[1], w, h, longest, MaxDimension)
		}
		if w%2 != 0 || h%2 != 0 {
			t.Errorf("FitDimensions(%d, %d) = %dx%d: dimensions must be even", c[0], c[1], w, h)
		}
	}
}

func TestScaleFilterString(t *testing.T) {
	f := ScaleFilter{Width: 512, Height: 288}
	want := "scale=512:288:flags=lanczos"
	if got := f.String(); got != want {
		t.Errorf("ScaleFilter.String() = %q, want %q", got, want)
	}
}

func TestFilterChainString(t *testing.T) {
	tests := []struct {
		name  string
		chain FilterChain
		want  string
	}{
		{
			"scale only",
			FilterChain{Scale: ScaleFilter{Width: 288, Height: 512}},
			"scale=288:512:flags=lanczos",
		},
		{
			"scale with fps",
			FilterChain{Scale: ScaleFilter{Width: 512, Height: 288}, FPS: 30},
			"scale=512:288:flags=lanczos,fps=30",
		},
		{
			"custom fps",
			FilterChain{Scale: ScaleFilter{Width: 512, Height: 384}, FPS: 24},
			"scale=512:384:flags=lanczos,fps=24",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chain.String(); got != tt.want {
				t.Errorf("FilterChain.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPlan_Animated(t *testing.T) {
	cfg := config.DefaultConfig()
	info := &probe.ImageInfo{Codec: "gif", Width: 1920, Height: 1080, Frames: 10}

	plan := BuildPlan(&cfg, "/in/a.gif", "/out/a.webm", info)

	if plan.Kind != KindAnimated {
		t.Fatalf("Kind = %v, want KindAnimated", plan.Kind)
	}
	if plan.TargetWidth != 512 || plan.TargetHeight != 288 {
		t.Errorf("target = %dx%d, want 512x288", plan.TargetWidth, plan.TargetHeight)
	}
	if plan.Filter != "scale=512:288:flags=lanczos,fps=30" {
		t.Errorf("Filter = %q", plan.Filter)
	}
	if plan.SingleFrame {
		t.Error("animated plan must not pin a single frame")
	}
	if plan.Quality != 32 || plan.FrameRate != 30 {
		t.Errorf("quality/fps = %d/%d, want 32/30", plan.Quality, plan.FrameRate)
	}
}

func TestBuildPlan_Static(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Quality = 40
	info := &probe.ImageInfo{Codec: "png", Width: 1080, Height: 1920, Frames: 1}

	plan := BuildPlan(&cfg, "/in/b.PNG", "/out/b.webm", info)

	if plan.Kind != KindStatic {
		t.Fatalf("Kind = %v, want KindStatic", plan.Kind)
	}
	if plan.TargetWidth != 288 || plan.TargetHeight != 512 {
		t.Errorf("target = %dx%d, want 288x512", plan.TargetWidth, plan.TargetHeight)
	}
	if plan.Filter != "scale=288:512:flags=lanczos" {
		t.Errorf("Filter = %q (fps must not appear for stills)", plan.Filter)
	}
	if !plan.SingleFrame {
		t.Error("static plan must pin a single frame")
	}
	if plan.Quality != 40 {
		t.Errorf("Quality = %d, want 40", plan.Quality)
	}
}

func TestBuildPlan_Unsupported(t *testing.T) {
	cfg := config.DefaultConfig()
	info := &probe.ImageInfo{Width: 100, Height: 100}

	plan := BuildPlan(&cfg, "/in/c.txt", "/out/c.webm", info)
	if plan.Kind != KindUnsupported {
		t.Errorf("Kind = %v, want KindUnsupported", plan.Kind)
	}
	if plan.Filter != "" {
		t.Errorf("Filter = %q, want empty", plan.Filter)
	}
}
