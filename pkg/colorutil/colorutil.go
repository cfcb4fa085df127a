// Package colorutil provides shared color values for masks and backgrounds.
package colorutil

import (
	"image/color"

	"gocv.io/x/gocv"
)

// Mask and background colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Scalar converts an RGBA color to an OpenCV BGR scalar.
func Scalar(c color.RGBA) gocv.Scalar {
	return gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)
}
