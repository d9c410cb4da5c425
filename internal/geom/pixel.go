package geom

// PixelToPoint maps pixel (col,row) of an image of size d onto the plane
// rectangle spanned by ul and lr.
func PixelToPoint(d Dims, col, row int, ul, lr complex128) complex128 {
	w, h := real(lr)-real(ul), imag(ul)-imag(lr)
	return complex(
		real(ul)+float64(col)*w/float64(d.W),
		imag(ul)-float64(row)*h/float64(d.H),
	)
}

// Point maps a pixel through b.
func (b Bounds) Point(d Dims, col, row int) complex128 {
	return PixelToPoint(d, col, row, b.UpperLeft, b.LowerRight)
}

// Width is the real extent.
func (b Bounds) Width() float64 { return real(b.LowerRight) - real(b.UpperLeft) }

// Height is the imaginary extent.
func (b Bounds) Height() float64 { return imag(b.UpperLeft) - imag(b.LowerRight) }

func (b Bounds) Center() complex128 {
	return complex(
		(real(b.UpperLeft)+real(b.LowerRight))/2,
		(imag(b.UpperLeft)+imag(b.LowerRight))/2,
	)
}

// Zoom scales the extent around the centre. factor > 1 zooms in.
func (b Bounds) Zoom(factor float64) Bounds {
	if factor <= 0 {
		return b
	}
	c := b.Center()
	hw, hh := b.Width()/2/factor, b.Height()/2/factor
	return Bounds{
		UpperLeft:  complex(real(c)-hw, imag(c)+hh),
		LowerRight: complex(real(c)+hw, imag(c)-hh),
	}
}

// Pan shifts the view by a fraction of its extent. Positive fy moves down the pixel grid.
func (b Bounds) Pan(fx, fy float64) Bounds {
	d := complex(fx*b.Width(), -fy*b.Height())
	return Bounds{UpperLeft: b.UpperLeft + d, LowerRight: b.LowerRight + d}
}

// FitAspect grows the shorter extent about the centre so that one plane unit
// covers the same number of pixels on both axes.
func (b Bounds) FitAspect(d Dims) Bounds {
	if !d.Valid() {
		return b
	}
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return b
	}
	want := float64(d.W) / float64(d.H)
	switch {
	case w/h < want:
		w = h * want
	case w/h > want:
		h = w / want
	default:
		return b
	}
	c := b.Center()
	return Bounds{
		UpperLeft:  complex(real(c)-w/2, imag(c)+h/2),
		LowerRight: complex(real(c)+w/2, imag(c)-h/2),
	}
}
