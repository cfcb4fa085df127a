// Package split partitions a composite image into one image per contour
// cluster.
//
// The pipeline runs in four steps:
//  1. Resolve the expected object names (from a file, or 0..n-1)
//  2. Reconcile the cluster count with the name count
//  3. Rasterize each retained cluster into a mask and isolate it
//  4. Name the result "<stem>_<name>_p<ordinal>.jpg" and write it
//
// Clusters are processed one at a time in their corrected order. A cluster
// whose mask is empty is skipped without a manifest entry.
package split

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	cimage "cluster-splitter/internal/image"
	"cluster-splitter/internal/mask"
	"cluster-splitter/internal/names"
	"cluster-splitter/internal/naming"
	"cluster-splitter/internal/reconcile"
	"cluster-splitter/pkg/geometry"

	"gocv.io/x/gocv"
)

// Options control naming, emission and debugging for one Split call.
type Options struct {
	// OutputDir receives the cluster images. When empty, paths are only
	// planned relative to the working directory and nothing is written.
	OutputDir string
	// BaseName is the stem of every output name, used as given (see
	// naming.StemFromFile to derive one from an image path). Empty means
	// the current timestamp.
	BaseName string
	// NameFile lists one target name per line. Empty means 0..n-1.
	NameFile string

	Debug DebugMode
	// DebugDir receives DebugPrint images. Empty means the working directory.
	DebugDir string

	// Fill is the background of masked-out pixels.
	Fill mask.Fill

	// Now overrides the clock used for the default stem.
	Now func() time.Time
}

// Result is the outcome of a Split.
type Result struct {
	// Step is the updated pipeline step counter.
	Step int
	// Paths are the written (or planned) files in corrected order.
	Paths []string
	// Names are the names matched to the corrected clusters.
	Names []string

	Warnings []reconcile.Warning
	// Dropped are the original indices of clusters pruned by reconciliation.
	Dropped []int
}

// Splitter runs the split pipeline against its collaborators.
type Splitter struct {
	Writer  cimage.Writer
	Plotter cimage.Plotter
	Logger  *log.Logger
}

// New returns a Splitter that writes with OpenCV and plots in OpenCV windows.
func New() *Splitter {
	return &Splitter{
		Writer:  cimage.FileWriter{},
		Plotter: cimage.WindowPlotter{},
	}
}

func (s *Splitter) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Split isolates every cluster of groups from src. step is the caller's
// pipeline counter; it is advanced once per cluster that produced an image
// and returned in Result.Step. Write errors abort the split and are
// returned as-is.
func (s *Splitter) Split(step int, src gocv.Mat, groups []geometry.ClusterGroup, contours geometry.ContourSet, opts Options) (*Result, error) {
	// OpenCV cannot allocate a zero-size mask.
	if src.Empty() {
		return nil, fmt.Errorf("failed to allocate cluster mask: empty source image")
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stem := naming.Stem(opts.BaseName, now())

	list, err := names.Resolve(opts.NameFile, len(groups))
	if err != nil {
		return nil, err
	}

	rec := reconcile.Reconcile(groups, list, contours)
	for _, w := range rec.Warnings {
		s.logger().Print(w)
	}

	raster, err := mask.NewRasterizer(src.Rows(), src.Cols(), contours)
	if err != nil {
		return nil, err
	}
	defer raster.Close()

	res := &Result{
		Step:     step,
		Names:    rec.Names,
		Warnings: rec.Warnings,
		Dropped:  rec.Dropped,
	}
	for i, name := range naming.FileNames(stem, rec.Names) {
		path := naming.Path(opts.OutputDir, name)
		if err := s.splitOne(res, src, raster, rec.Groups[i], path, opts); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *Splitter) splitOne(res *Result, src gocv.Mat, raster *mask.Rasterizer, group geometry.ClusterGroup, path string, opts Options) error {
	m, ok := raster.Mask(group)
	if !ok {
		return nil
	}
	defer m.Close()

	masked := mask.Apply(src, m, opts.Fill)
	defer masked.Close()
	res.Step++

	if opts.OutputDir != "" {
		if err := s.Writer.Write(path, masked); err != nil {
			return err
		}
	}
	res.Paths = append(res.Paths, path)

	switch opts.Debug {
	case DebugNone:
	case DebugPrint:
		dir := opts.DebugDir
		if dir == "" {
			dir = naming.DefaultDir
		}
		return s.Writer.Write(filepath.Join(dir, naming.DebugFileName(res.Step)), masked)
	case DebugPlot:
		return s.Plotter.Plot(filepath.Base(path), masked)
	default:
		return fmt.Errorf("unknown debug mode %s", opts.Debug)
	}
	return nil
}
