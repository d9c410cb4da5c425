package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zeromicro/go-zero/core/syncx"

	"mandelview/internal/config"
	"mandelview/internal/geom"
	"mandelview/internal/imageio"
	"mandelview/internal/mandel"
)

// frame is one finished preview render at micro-pixel resolution.
type frame struct {
	buf     []byte
	dims    geom.Dims
	bounds  geom.Bounds
	limit   int
	elapsed time.Duration
}

func (f frame) ok() bool { return f.dims.Valid() && len(f.buf) == f.dims.Len() }

type frameMsg struct {
	seq   int
	frame frame
	err   error
}

type savedMsg struct {
	path string
	err  error
}

// requestFrame schedules a render of the current view at the map size. A
// different view cancels the render still in flight; the same view joins it.
func (m Model) requestFrame() (Model, tea.Cmd) {
	if m.mapW <= 0 || m.mapH <= 0 {
		return m, nil
	}
	d := geom.Dims{W: m.mapW * 2, H: m.mapH * 4}
	b := m.bounds.FitAspect(d)
	key := frameKey(d, b, m.limit)
	if !m.rendering || key != m.renderKey || m.renderCtx == nil {
		m.release()
		m.renderCtx, m.cancel = context.WithCancel(context.Background())
		m.renderKey = key
		m.renderGen++
	}
	m.seq++
	m.rendering = true
	// a cancelled call for the same view must not be joined, hence the generation
	flightKey := fmt.Sprintf("%s #%d", key, m.renderGen)
	return m, renderCmd(m.renderCtx, m.flight, m.cfg, m.seq, flightKey, d, b, m.limit)
}

// release cancels the render context, if any.
func (m *Model) release() {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.renderCtx = nil
	m.renderKey = ""
}

func frameKey(d geom.Dims, b geom.Bounds, limit int) string {
	return fmt.Sprintf("%dx%d %v %v %d", d.W, d.H, b.UpperLeft, b.LowerRight, limit)
}

func renderCmd(ctx context.Context, flight syncx.SingleFlight, cfg config.Config, seq int, key string, d geom.Dims, b geom.Bounds, limit int) tea.Cmd {
	return func() tea.Msg {
		v, err := flight.Do(key, func() (any, error) {
			rctx := ctx
			if cfg.Timeout > 0 {
				var cancel context.CancelFunc
				rctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
				defer cancel()
			}
			start := time.Now()
			// inside points are drawn dark so the set itself carries the dots
			buf, err := mandel.Render(rctx, d, b.UpperLeft, b.LowerRight, limit,
				mandel.WithWorkers(cfg.Workers), mandel.WithRowsPerTask(cfg.RowsPerTask), mandel.WithInside(0))
			if err != nil {
				return nil, err
			}
			return frame{buf: buf, dims: d, bounds: b, limit: limit, elapsed: time.Since(start)}, nil
		})
		if err != nil {
			return frameMsg{seq: seq, err: err}
		}
		return frameMsg{seq: seq, frame: v.(frame)}
	}
}

// saveCmd renders the visible region at full size and writes a PNG with a metadata sidecar.
func saveCmd(cfg config.Config, b geom.Bounds, limit int, path string) tea.Cmd {
	return func() tea.Msg {
		d := cfg.Save()
		b = b.FitAspect(d)
		ctx := context.Background()
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		start := time.Now()
		buf, err := mandel.Render(ctx, d, b.UpperLeft, b.LowerRight, limit,
			mandel.WithWorkers(cfg.Workers), mandel.WithRowsPerTask(cfg.RowsPerTask), mandel.WithInside(byte(cfg.Inside)))
		if err != nil {
			return savedMsg{path: path, err: err}
		}
		elapsed := time.Since(start)
		if err := imageio.WritePNG(path, buf, d); err != nil {
			return savedMsg{path: path, err: err}
		}
		meta := imageio.NewMeta(d, b, limit, cfg.Workers, byte(cfg.Inside), elapsed, mandel.Summarize(buf))
		metaPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
		return savedMsg{path: path, err: imageio.WriteMeta(metaPath, meta)}
	}
}

// renderMap draws the latest frame as braille, w x h cells.
func (m Model) renderMap(w, h int) string {
	lines := make([]string, h)
	for y := range lines {
		lines[y] = strings.Repeat(" ", w)
	}
	if !m.frame.ok() {
		msg := "rendering…"
		if m.errMsg != "" {
			msg = m.errMsg
		}
		if h > 0 {
			lines[h/2] = padRight("", max(0, (w-len(msg))/2)) + msg
		}
		return strings.Join(lines, "\n")
	}
	g := newDotGrid(m.frame.buf, m.frame.dims, byte(255-clamp(m.cfg.Cutoff, 0, 255)))
	if m.inspectPopup != "" {
		g.crosshair(m.frame.dims.W/2, m.frame.dims.H/2)
	}
	braLines := g.lines()
	for y := 0; y < h && y < len(braLines); y++ {
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}
	// Hover highlight
	if m.hovering && m.hoverCellY >= 0 && m.hoverCellY < len(lines) {
		r := []rune(lines[m.hoverCellY])
		if m.hoverCellX >= 0 && m.hoverCellX < len(r) {
			lines[m.hoverCellY] = string(r[:m.hoverCellX]) + hoverStyle.Render("◯") + string(r[m.hoverCellX+1:])
		}
	}
	return strings.Join(lines, "\n")
}

// cellToPoint converts a map cell to the plane point under its top-left micro pixel.
func (m Model) cellToPoint(cx, cy int) (complex128, bool) {
	if !m.frame.ok() {
		return 0, false
	}
	mx, my := cx*2, cy*4
	if mx >= m.frame.dims.W || my >= m.frame.dims.H || mx < 0 || my < 0 {
		return 0, false
	}
	return m.frame.bounds.Point(m.frame.dims, mx, my), true
}

// inspectCenter evaluates the point at the centre of the current frame.
func (m Model) inspectCenter() string {
	if !m.frame.ok() {
		return "nothing rendered yet"
	}
	b := m.frame.bounds
	c := b.Center()
	n, escaped := mandel.EscapeTime(c, m.frame.limit)
	verdict := "bounded (in set)"
	if escaped {
		verdict = fmt.Sprintf("escapes at %d", n)
	}
	meta := []string{
		fmt.Sprintf("centre: %s", fmtPoint(c)),
		fmt.Sprintf("orbit:  %s (limit %d)", verdict, m.frame.limit),
		fmt.Sprintf("ul:     %s", fmtPoint(b.UpperLeft)),
		fmt.Sprintf("lr:     %s", fmtPoint(b.LowerRight)),
		fmt.Sprintf("extent: %.4g x %.4g", b.Width(), b.Height()),
	}
	return strings.Join(meta, "\n")
}
