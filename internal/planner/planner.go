// Package planner classifies inputs by extension, applies the longest-side
// scale rule, and produces the per-file conversion plan consumed by the
// ffmpeg package.
package planner

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/backmassage/webmpress/internal/config"
	"github.com/backmassage/webmpress/internal/probe"
)

// MaxDimension is the fixed longest-side target for scaled output.
const MaxDimension = 512

// Classify maps a path's extension (case-insensitively) to a Kind.
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gif":
		return KindAnimated
	case ".png":
		return KindStatic
	}
	return KindUnsupported
}

// FitDimensions applies the scale rule to decoded source dimensions:
// landscape inputs (aspect ratio > 1) get width = MaxDimension with the
// height scaled proportionally; portrait and square inputs get
// height = MaxDimension with the width scaled proportionally. The computed
// dimension is rounded to the nearest even number, as VP9 chroma subsampling
// requires even sizes.
func FitDimensions(srcWidth, srcHeight int) (int, int) {
	if srcWidth > srcHeight {
		return MaxDimension, scaleEven(srcHeight, srcWidth)
	}
	return scaleEven(srcWidth, srcHeight), MaxDimension
}

// scaleEven computes dim * MaxDimension / other rounded to the nearest even
// number, never below 2.
func scaleEven(dim, other int) int {
	scaled := float64(MaxDimension) * float64(dim) / float64(other)
	even := int(math.Round(scaled/2)) * 2
	if even < 2 {
		even = 2
	}
	return even
}

// BuildPlan produces a complete FilePlan from config, paths, and probe data.
//
// Flow:
//  1. Classify by extension (animated GIF vs static PNG)
//  2. Apply the scale rule to the probed dimensions
//  3. Assemble the filter chain (scale, plus fps for animated inputs)
//  4. Carry the constant-quality level and output pinning for stills
func BuildPlan(cfg *config.Config, inputPath, outputPath string, info *probe.ImageInfo) *FilePlan {
	kind := Classify(inputPath)

	plan := &FilePlan{
		Kind:       kind,
		Quality:    cfg.Quality,
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
	if kind == KindUnsupported {
		return plan
	}

	plan.TargetWidth, plan.TargetHeight = FitDimensions(info.Width, info.Height)

	chain := FilterChain{
		Scale: ScaleFilter{Width: plan.TargetWidth, Height: plan.TargetHeight},
	}
	switch kind {
	case KindAnimated:
		plan.FrameRate = cfg.FrameRate
		chain.FPS = cfg.FrameRate
	case KindStatic:
		plan.SingleFrame = true
	}
	plan.Filter = chain.String()

	return plan
}
