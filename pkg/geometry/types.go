// Package geometry provides the contour and cluster types shared by the splitter.
package geometry

import "image"

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToImage converts to an image.Point.
func (p PointInt) ToImage() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// RectInt represents an axis-aligned rectangle with integer coordinates.
type RectInt struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the rectangle covers no pixels.
func (r RectInt) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing both r and other.
// An empty rectangle is the identity.
func (r RectInt) Union(other RectInt) RectInt {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return RectInt{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contour is a closed boundary traced around a detected region.
type Contour []PointInt

// Len returns the number of boundary points.
func (c Contour) Len() int {
	return len(c)
}

// Bounds returns the bounding box of the contour points (inclusive of the
// last pixel). An empty contour has an empty box.
func (c Contour) Bounds() RectInt {
	if len(c) == 0 {
		return RectInt{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return RectInt{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// ImagePoints converts the contour to image.Point form.
func (c Contour) ImagePoints() []image.Point {
	pts := make([]image.Point, len(c))
	for i, p := range c {
		pts[i] = p.ToImage()
	}
	return pts
}

// ContourSet holds every contour found in one source image. Indices into
// it stay valid for the duration of a split.
type ContourSet []Contour

// ImagePoints converts the whole set, preserving indices.
func (s ContourSet) ImagePoints() [][]image.Point {
	out := make([][]image.Point, len(s))
	for i, c := range s {
		out[i] = c.ImagePoints()
	}
	return out
}

// ClusterGroup lists the contour indices that make up one object.
type ClusterGroup []int

// TotalLength sums the point counts of every member contour.
// Indices are not range checked.
func (g ClusterGroup) TotalLength(contours ContourSet) int {
	total := 0
	for _, idx := range g {
		total += contours[idx].Len()
	}
	return total
}

// Bounds returns the union of the member contours' bounding boxes.
func (g ClusterGroup) Bounds(contours ContourSet) RectInt {
	var r RectInt
	for _, idx := range g {
		r = r.Union(contours[idx].Bounds())
	}
	return r
}
