// Package project reads cluster input files produced by the upstream
// contour detection and clustering step.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"cluster-splitter/pkg/geometry"
)

// File is a cluster input file (.json).
type File struct {
	Version int `json:"version"`

	// Image path (relative to the cluster file)
	ImagePath string `json:"image,omitempty"`

	Contours geometry.ContourSet     `json:"contours"`
	Groups   []geometry.ClusterGroup `json:"groups"`
}

// Load loads a cluster file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse cluster file %s: %w", path, err)
	}

	return &f, nil
}

// GetImagePath returns the absolute path to the source image.
func (f *File) GetImagePath(filePath string) string {
	if f.ImagePath == "" {
		return ""
	}
	if filepath.IsAbs(f.ImagePath) {
		return f.ImagePath
	}
	return filepath.Join(filepath.Dir(filePath), f.ImagePath)
}
