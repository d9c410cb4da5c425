package geom

import "math"

// Dims is an image size in pixels.
type Dims struct {
	W int
	H int
}

// Valid reports whether both sides are positive and W×H fits in an int.
func (d Dims) Valid() bool {
	return d.W > 0 && d.H > 0 && d.W <= math.MaxInt/d.H
}

// Len is the number of pixels in a row-major buffer of this size.
func (d Dims) Len() int { return d.W * d.H }

// Bounds is the rectangle of the complex plane covered by an image.
// UpperLeft maps to pixel (0,0); the imaginary axis grows upward, rows grow downward.
type Bounds struct {
	UpperLeft  complex128
	LowerRight complex128
}
