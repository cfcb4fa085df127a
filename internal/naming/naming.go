// Package naming composes output file names for split clusters.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// Ext is the fixed extension of cluster images.
	Ext = ".jpg"

	// TimestampLayout formats the default stem as MM-DD-YYYY_HH:MM:SS.
	TimestampLayout = "01-02-2006_15:04:05"

	// DefaultDir roots planned paths when no output directory is given.
	DefaultDir = "."
)

// Stem returns the base of every output name: base unchanged, or the
// formatted timestamp when base is empty.
func Stem(base string, now time.Time) string {
	if base == "" {
		return now.Format(TimestampLayout)
	}
	return base
}

// StemFromFile derives a stem from an image path by dropping the directory
// and the extension ("images/tray_04.tiff" becomes "tray_04").
func StemFromFile(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileName returns "<stem>_<name>_p<ordinal>.jpg".
func FileName(stem, name string, ordinal int) string {
	return fmt.Sprintf("%s_%s_p%d%s", stem, name, ordinal, Ext)
}

// FileNames names every corrected cluster in order.
func FileNames(stem string, names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = FileName(stem, n, i)
	}
	return out
}

// Path joins a file name onto dir, or onto DefaultDir when dir is empty.
func Path(dir, fileName string) string {
	if dir == "" {
		dir = DefaultDir
	}
	return filepath.Join(dir, fileName)
}

// DebugFileName names the intermediate image written at a pipeline step.
func DebugFileName(step int) string {
	return fmt.Sprintf("%d_clusters.png", step)
}
