// Package mandel renders grayscale escape-time images of the Mandelbrot set.
package mandel

// EscapeTime iterates z = z*z + c from zero and reports the first iteration
// at which |z|² exceeds 4. ok is false when the orbit stays bounded for limit
// iterations.
func EscapeTime(c complex128, limit int) (n int, ok bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4.0 {
			return i, true
		}
	}
	return 0, false
}

// Intensity turns an escape result into a pixel value. Counts above 255 saturate to 0.
func Intensity(n int, escaped bool, inside byte) byte {
	if !escaped {
		return inside
	}
	if n >= 255 {
		return 0
	}
	if n < 0 {
		n = 0
	}
	return byte(255 - n)
}
