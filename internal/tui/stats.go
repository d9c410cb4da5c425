package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"mandelview/internal/mandel"
)

// refreshStats rebuilds the stats table from the current frame.
func (m *Model) refreshStats() {
	rows := m.buildStats()
	if len(rows) == 0 {
		m.showStats = false
		m.status = "no frame to summarise"
		return
	}
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "key", Width: 12},
		{Title: "value", Width: 36},
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		trows = append(trows, table.Row{fmt.Sprintf("%d", i+1), r[0], r[1]})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(trows)
}

// buildStats returns key/value rows describing the current frame.
func (m *Model) buildStats() [][2]string {
	f := m.frame
	if !f.ok() {
		return nil
	}
	s := mandel.Summarize(f.buf)
	dark := 0
	cut := 255 - clamp(m.cfg.Cutoff, 0, 255)
	for v := 0; v <= cut; v++ {
		dark += s.Histogram[v]
	}
	pct := func(n int) string { return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(s.Pixels)) }
	return [][2]string{
		{"upper-left", fmtPoint(f.bounds.UpperLeft)},
		{"lower-right", fmtPoint(f.bounds.LowerRight)},
		{"centre", fmtPoint(f.bounds.Center())},
		{"extent", fmt.Sprintf("%.6g x %.6g", f.bounds.Width(), f.bounds.Height())},
		{"preview", fmt.Sprintf("%dx%d px", f.dims.W, f.dims.H)},
		{"limit", fmt.Sprintf("%d", f.limit)},
		{"elapsed", f.elapsed.String()},
		{"black", pct(s.Black)},
		{"dotted", pct(dark)},
		{"mean", fmt.Sprintf("%.2f", s.Mean)},
	}
}
