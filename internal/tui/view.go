package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mandelview/internal/buildinfo"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, mapWidth, mapHeight := m.layout()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" mandelview ─ escape-time explorer ") + dimStyle.Render(" "+buildinfo.Short())
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showStats:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(mapWidth, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(mapHeight-2, 14))
		statsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, statsBox)
	case m.gotoMode:
		m.ta.SetWidth(min(mapWidth, 80))
		gotoBox := boxStyle.Render(titleStyle.Render("goto") + "\n" + m.ta.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, gotoBox)
	default:
		canvas := m.renderMap(mapWidth, mapHeight)
		if m.inspectPopup != "" {
			box := boxStyle.MaxWidth(min(60, mapWidth)).Render(m.inspectPopup)
			canvas = overlay(canvas, box)
		}
		mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(canvas)
	}

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	help := m.renderHelp()
	statusStyle := dimStyle
	if m.errMsg != "" {
		statusStyle = errStyle
	}
	status := statusStyle.Render(" " + m.status + " ")
	if m.rendering {
		status += dimStyle.Render("⟳ ")
	}
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  c=%s  ", fmtPoint(m.hoverPoint)))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, right)),
		lipgloss.NewStyle().Width(contentWidth).MaxHeight(1).Render(help),
	)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// overlay writes box over the top-left corner of base, line by line.
func overlay(base, box string) string {
	bl := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		if i >= len(bl) {
			break
		}
		w := lipgloss.Width(line)
		r := []rune(bl[i])
		if w < len(r) {
			bl[i] = line + string(r[w:])
		} else {
			bl[i] = line
		}
	}
	return strings.Join(bl, "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"[/] limit",
		"Tab presets",
		"g goto",
		"t stats",
		"i inspect",
		"s save",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
