package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mandelview/internal/config"
	"mandelview/internal/geom"
	"mandelview/internal/imageio"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.SaveDims = "40x30"
	cfg.Limit = 64
	return New(cfg, geom.Presets[1].Bounds)
}

// step feeds msg to m and runs any returned render command to completion.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for cmd != nil {
		out := cmd()
		switch out.(type) {
		case frameMsg, savedMsg:
			next, cmd = m.Update(out)
			m = next.(Model)
		default:
			cmd = nil
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDotGrid(t *testing.T) {
	d := geom.Dims{W: 2, H: 4}
	if got := newDotGrid(make([]byte, 8), d, 0).lines(); len(got) != 1 || got[0] != "⣿" {
		t.Fatalf("full cell = %q", got)
	}
	buf := []byte{0, 255, 255, 255, 255, 255, 255, 255}
	if got := newDotGrid(buf, d, 10).lines(); got[0] != "⠁" {
		t.Fatalf("single dot = %q", got)
	}
	if got := newDotGrid(buf, d, 0).lines(); got[0] != "⠁" {
		t.Fatalf("threshold is inclusive, got %q", got)
	}
	// bottom-right pixel is dot 8
	buf = []byte{255, 255, 255, 255, 255, 255, 255, 0}
	if got := newDotGrid(buf, d, 0).lines(); got[0] != "⢀" {
		t.Fatalf("dot 8 = %q", got)
	}
}

func TestDotGridPartialCells(t *testing.T) {
	// 3x5 micro pixels needs 2x2 cells
	d := geom.Dims{W: 3, H: 5}
	g := newDotGrid(make([]byte, d.Len()), d, 0)
	got := g.lines()
	want := []string{"⣿⡇", "⠉⠁"}
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDotGridCrosshair(t *testing.T) {
	d := geom.Dims{W: 4, H: 8}
	g := newDotGrid(bytes255(d.Len()), d, 0)
	g.crosshair(1, 1)
	got := g.lines()
	// row 1 across both columns of cells, column 1 down both rows
	want := []string{"⢺⠒", "⢸ "}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func bytes255(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 255
	}
	return b
}

func TestResizeRendersFrame(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 60, Height: 20})
	if !m.frame.ok() {
		t.Fatalf("no frame after resize, status %q", m.status)
	}
	if m.frame.dims != (geom.Dims{W: m.mapW * 2, H: m.mapH * 4}) {
		t.Errorf("frame dims %+v for map %dx%d", m.frame.dims, m.mapW, m.mapH)
	}
	if m.rendering {
		t.Error("still rendering")
	}
	v := m.View()
	if !strings.ContainsFunc(v, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }) {
		t.Error("view has no braille dots")
	}
	if !strings.Contains(m.status, "rendered") {
		t.Errorf("status = %q", m.status)
	}
}

func TestStaleFrameDropped(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	old := m.frame
	m.seq += 2
	next, _ := m.Update(frameMsg{seq: m.seq - 1, frame: frame{}})
	m = next.(Model)
	if m.frame.dims != old.dims || len(m.frame.buf) != len(old.buf) {
		t.Fatal("stale frame replaced the current one")
	}
}

func TestViewChangeCancelsRender(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})

	next, first := m.Update(key("+"))
	m = next.(Model)
	ctx := m.renderCtx
	if ctx == nil || first == nil {
		t.Fatal("zoom did not start a render")
	}
	next, second := m.Update(key("+"))
	m = next.(Model)
	before := m.status
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Fatalf("superseded render context err = %v", ctx.Err())
	}
	if m.renderCtx == ctx || m.renderCtx.Err() != nil {
		t.Fatal("new view did not get a live context")
	}

	msg, ok := first().(frameMsg)
	if !ok || !errors.Is(msg.err, context.Canceled) {
		t.Fatalf("superseded render = %+v", msg)
	}
	next, _ = m.Update(msg)
	m = next.(Model)
	if m.status != before || m.errMsg != "" {
		t.Fatalf("cancelled render surfaced: status %q err %q", m.status, m.errMsg)
	}

	next, _ = m.Update(second())
	m = next.(Model)
	if !m.frame.ok() || m.rendering || m.cancel != nil {
		t.Fatalf("current render not applied: status %q", m.status)
	}
}

func TestSameViewJoinsRender(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	m, first := m.requestFrame()
	ctx := m.renderCtx
	m, second := m.requestFrame()
	if m.renderCtx != ctx || ctx.Err() != nil {
		t.Fatal("repeat request replaced the in-flight context")
	}
	if msg := first().(frameMsg); msg.err != nil {
		t.Fatalf("joined render: %v", msg.err)
	}
	next, _ := m.Update(second())
	m = next.(Model)
	if !m.frame.ok() {
		t.Fatalf("status %q", m.status)
	}
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Error("context not released after the frame landed")
	}
}

func TestZoomPanKeys(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	start := m.Bounds()
	m = step(t, m, key("+"))
	if m.Bounds().Width() >= start.Width() {
		t.Fatalf("zoom in did not shrink width: %v -> %v", start.Width(), m.Bounds().Width())
	}
	if m.frame.bounds.Width() >= start.FitAspect(m.frame.dims).Width() {
		t.Error("frame not re-rendered after zoom")
	}
	z := m.Bounds()
	m = step(t, m, key("right"))
	if real(m.Bounds().Center()) <= real(z.Center()) {
		t.Error("right did not move the view right")
	}
	m = step(t, m, key("up"))
	if imag(m.Bounds().Center()) <= imag(z.Center()) {
		t.Error("up did not move the view up")
	}
	m = step(t, m, key("r"))
	if m.Bounds() != start {
		t.Errorf("reset = %+v, want %+v", m.Bounds(), start)
	}
}

func TestLimitKeys(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	m = step(t, m, key("]"))
	if m.Limit() != 128 || m.frame.limit != 128 {
		t.Fatalf("limit = %d frame %d, want 128", m.Limit(), m.frame.limit)
	}
	for i := 0; i < 10; i++ {
		m = step(t, m, key("["))
	}
	if m.Limit() != minLimit {
		t.Errorf("limit = %d, want %d", m.Limit(), minLimit)
	}
}

func TestGotoMode(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	m = step(t, m, key("g"))
	if !m.gotoMode {
		t.Fatal("g did not open goto mode")
	}
	m.ta.SetValue("bogus")
	m = step(t, m, key("enter"))
	if !m.gotoMode || !strings.HasPrefix(m.status, "goto:") {
		t.Fatalf("bad input accepted, status %q", m.status)
	}
	m.ta.SetValue("-1.20,0.35 -1,0.20")
	m = step(t, m, key("enter"))
	if m.gotoMode {
		t.Fatal("goto mode still open")
	}
	if m.Bounds() != geom.Default {
		t.Errorf("bounds = %+v", m.Bounds())
	}
}

func TestPresetSidebar(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = step(t, m, key("tab"))
	if !m.showSidebar {
		t.Fatal("tab did not open sidebar")
	}
	m = step(t, m, key("enter"))
	if m.Bounds() != geom.Presets[0].Bounds {
		t.Errorf("enter on first preset = %+v", m.Bounds())
	}
	if !strings.Contains(m.status, geom.Presets[0].Name) {
		t.Errorf("status = %q", m.status)
	}
}

func TestStatsAndInspect(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 80, Height: 24})
	m = step(t, m, key("t"))
	if !m.showStats || len(m.tbl.Rows()) == 0 {
		t.Fatalf("stats not shown, status %q", m.status)
	}
	m = step(t, m, key("esc"))
	if m.showStats {
		t.Fatal("esc did not close stats")
	}
	m = step(t, m, key("i"))
	if !strings.Contains(m.inspectPopup, "centre:") {
		t.Fatalf("popup = %q", m.inspectPopup)
	}
	if v := m.View(); !strings.Contains(v, "centre:") {
		t.Error("popup not drawn")
	}
}

func TestHover(t *testing.T) {
	m := step(t, testModel(t), tea.WindowSizeMsg{Width: 40, Height: 12})
	ox, oy, _, _ := m.layout()
	m = step(t, m, tea.MouseMsg{X: ox, Y: oy, Action: tea.MouseActionMotion})
	if !m.hovering {
		t.Fatal("not hovering over map origin")
	}
	if m.hoverPoint != m.frame.bounds.UpperLeft {
		t.Errorf("hover at origin = %v, want %v", m.hoverPoint, m.frame.bounds.UpperLeft)
	}
	m = step(t, m, tea.MouseMsg{X: ox, Y: 0, Action: tea.MouseActionMotion})
	if m.hovering {
		t.Error("hovering over the header")
	}
}

func TestSaveCmd(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "shot.png")
	msg := saveCmd(m.cfg, geom.Default, 64, path)()
	saved, ok := msg.(savedMsg)
	if !ok || saved.err != nil {
		t.Fatalf("save = %#v", msg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	meta, err := imageio.ReadMeta(strings.TrimSuffix(path, ".png") + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if meta.Width != 40 || meta.Height != 30 || meta.Limit != 64 {
		t.Errorf("meta = %+v", meta)
	}
	m = step(t, m, saved)
	if m.status != "saved "+path {
		t.Errorf("status = %q", m.status)
	}
}
