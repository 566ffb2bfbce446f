// Package naming computes output file paths from input paths.
package naming

import (
	"path/filepath"
	"strings"
)

// Container is the output file extension (without dot). Every conversion
// produces a WebM file regardless of input type.
const Container = "webm"

// OutputPath builds the destination path for an input file: the input's stem
// with the container extension, placed directly in outputDir. The stem is
// preserved as-is; only the extension changes, regardless of its case.
//
//	a.gif   → <outputDir>/a.webm
//	b.PNG   → <outputDir>/b.webm
func OutputPath(inputPath, outputDir string) string {
	return filepath.Join(outputDir, Stem(inputPath)+"."+Container)
}

// Stem returns the base filename without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
