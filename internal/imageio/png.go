// Package imageio persists rendered buffers.
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"mandelview/internal/geom"
)

// Gray wraps buf as an 8-bit grayscale image without copying.
func Gray(buf []byte, d geom.Dims) (*image.Gray, error) {
	if !d.Valid() || len(buf) != d.Len() {
		return nil, fmt.Errorf("imageio: buffer of %d bytes does not fit %dx%d", len(buf), d.W, d.H)
	}
	return &image.Gray{Pix: buf, Stride: d.W, Rect: image.Rect(0, 0, d.W, d.H)}, nil
}

// EncodePNG writes buf as a single-channel PNG.
func EncodePNG(w io.Writer, buf []byte, d geom.Dims) error {
	img, err := Gray(buf, d)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WritePNG creates path and encodes buf into it.
func WritePNG(path string, buf []byte, d geom.Dims) (err error) {
	img, err := Gray(buf, d)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err := png.Encode(bw, img); err != nil {
		return fmt.Errorf("imageio: encode %s: %w", path, err)
	}
	return bw.Flush()
}
