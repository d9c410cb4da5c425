package mandel

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"mandelview/internal/geom"
)

var (
	// ErrBufferSize means the output buffer does not hold exactly W×H pixels.
	ErrBufferSize = errors.New("mandel: buffer length does not match dimensions")
	ErrDimensions = errors.New("mandel: dimensions must be positive and W×H must fit in an int")
	ErrLimit      = errors.New("mandel: iteration limit must be positive")
)

// Render allocates a row-major buffer of d.Len() bytes and fills it.
func Render(ctx context.Context, d geom.Dims, ul, lr complex128, limit int, opts ...Option) ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, d.W, d.H)
	}
	buf := make([]byte, d.Len())
	if err := RenderInto(ctx, buf, d, ul, lr, limit, opts...); err != nil {
		return nil, err
	}
	return buf, nil
}

// RenderInto fills buf with the image of the rectangle ul..lr. All checks run
// before the first pixel is written. The context is consulted between row
// partitions; once cancelled, buf is partially written and ctx.Err() is returned.
func RenderInto(ctx context.Context, buf []byte, d geom.Dims, ul, lr complex128, limit int, opts ...Option) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, d.W, d.H)
	}
	if len(buf) != d.Len() {
		return fmt.Errorf("%w: have %d, want %dx%d=%d", ErrBufferSize, len(buf), d.W, d.H, d.Len())
	}
	if limit <= 0 {
		return fmt.Errorf("%w: %d", ErrLimit, limit)
	}
	o := newOptions(opts)

	if o.workers == 1 {
		for y0 := 0; y0 < d.H; y0 += o.rowsPerTask {
			if err := ctx.Err(); err != nil {
				return err
			}
			y1 := min(y0+o.rowsPerTask, d.H)
			renderRows(buf[y0*d.W:y1*d.W], d, y0, ul, lr, limit, o.inside)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for y0 := 0; y0 < d.H; y0 += o.rowsPerTask {
		y1 := min(y0+o.rowsPerTask, d.H)
		rows := buf[y0*d.W : y1*d.W]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			renderRows(rows, d, y0, ul, lr, limit, o.inside)
			return nil
		})
	}
	return g.Wait()
}

// renderRows fills dst, which holds whole rows starting at row y0.
func renderRows(dst []byte, d geom.Dims, y0 int, ul, lr complex128, limit int, inside byte) {
	for i := range dst {
		col, row := i%d.W, y0+i/d.W
		n, ok := EscapeTime(geom.PixelToPoint(d, col, row, ul, lr), limit)
		dst[i] = Intensity(n, ok, inside)
	}
}
