package tracedata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a trace batch from path, dispatching on file extension:
// .npy, .json, or .csv. MATLAB-style .mat containers are not supported
// (see DESIGN.md).
func Load(path string) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("tracedata: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FromJSON(f)
	case ".csv":
		return FromCSV(f)
	case ".npy":
		return FromNPY(f)
	default:
		return Batch{}, fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
}
