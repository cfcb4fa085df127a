// Package mask renders cluster masks and isolates clusters from a source image.
package mask

import (
	"fmt"
	"strings"

	"cluster-splitter/pkg/colorutil"
	"cluster-splitter/pkg/geometry"

	"gocv.io/x/gocv"
)

//go:generate go tool stringer -type=Fill -linecomment -output=fill_string.go

// Fill selects the background color for masked-out pixels.
type Fill int

const (
	FillWhite Fill = iota // white
	FillBlack             // black
)

// ParseFill parses "white" or "black". The empty string means white.
func ParseFill(s string) (Fill, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "white":
		return FillWhite, nil
	case "black":
		return FillBlack, nil
	}
	return FillWhite, fmt.Errorf("unknown fill %q (want white or black)", s)
}

func (f Fill) scalar() gocv.Scalar {
	switch f {
	case FillBlack:
		return colorutil.Scalar(colorutil.Black)
	default:
		return colorutil.Scalar(colorutil.White)
	}
}

// Rasterizer draws cluster masks for one source image size and contour set.
type Rasterizer struct {
	rows, cols int
	contours   geometry.ContourSet
	points     gocv.PointsVector
}

// NewRasterizer prepares the contour set for drawing into rows x cols masks.
// Call Close when done.
func NewRasterizer(rows, cols int, contours geometry.ContourSet) (*Rasterizer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid mask size %dx%d", cols, rows)
	}
	return &Rasterizer{
		rows:     rows,
		cols:     cols,
		contours: contours,
		points:   gocv.NewPointsVectorFromPoints(contours.ImagePoints()),
	}, nil
}

// Close releases the native contour vector.
func (r *Rasterizer) Close() {
	r.points.Close()
}

// Mask fills every contour of the group into a binary single-channel mask.
// It returns false, and no Mat, when the group covers no pixels.
func (r *Rasterizer) Mask(group geometry.ClusterGroup) (gocv.Mat, bool) {
	// No points at all: skip the allocation.
	if group.Bounds(r.contours).Empty() {
		return gocv.Mat{}, false
	}

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), r.rows, r.cols, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	for _, idx := range group {
		// OpenCV has nothing to fill for a pointless contour.
		if r.contours[idx].Len() == 0 {
			continue
		}
		gocv.DrawContours(&canvas, r.points, idx, colorutil.White, -1)
	}

	channels := gocv.Split(canvas)
	defer func() {
		for _, ch := range channels {
			ch.Close()
		}
	}()

	first := channels[0]
	if gocv.CountNonZero(first) == 0 {
		return gocv.Mat{}, false
	}

	binary := gocv.NewMat()
	gocv.Threshold(first, &binary, 254, 255, gocv.ThresholdBinary)
	return binary, true
}

// Apply copies src through the binary mask onto a background of the fill color.
func Apply(src, mask gocv.Mat, fill Fill) gocv.Mat {
	out := gocv.NewMatWithSizeFromScalar(fill.scalar(), src.Rows(), src.Cols(), src.Type())
	src.CopyToWithMask(&out, mask)
	return out
}
