package pipeline

import (
	"os"
	"path/filepath"
	"strings"
)

// Supported input extensions (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".gif": true,
	".png": true,
}

// Discover lists the files directly inside inputDir (non-recursive) whose
// extension matches the allow-list case-insensitively, and returns their
// paths sorted lexicographically for deterministic processing order.
// Subdirectories and non-matching files are silently skipped.
func Discover(inputDir string) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if imageExtensions[ext] {
			files = append(files, filepath.Join(inputDir, e.Name()))
		}
	}
	// os.ReadDir already sorts by filename.
	return files, nil
}
