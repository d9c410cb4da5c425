package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"mandelview/internal/geom"
)

type presetItem struct {
	p geom.Preset
}

func (i presetItem) Title() string { return i.p.Name }
func (i presetItem) Description() string {
	return fmt.Sprintf("%.4g wide at %s", i.p.Bounds.Width(), fmtPoint(i.p.Bounds.Center()))
}
func (i presetItem) FilterValue() string { return i.p.Name }

func presetItems() []list.Item {
	items := make([]list.Item, 0, len(geom.Presets))
	for _, p := range geom.Presets {
		items = append(items, presetItem{p: p})
	}
	return items
}

// jump moves the view to b.
func (m *Model) jump(name string, b geom.Bounds) {
	m.bounds = b
	m.view = name
	m.inspectPopup = ""
	m.errMsg = ""
	m.status = "view: " + name
}
