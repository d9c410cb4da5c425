package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mandelview/internal/geom"
)

const (
	panStep  = 0.1
	zoomStep = 1.5
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.resize()
	case frameMsg:
		if msg.seq != m.seq {
			// a newer request is in flight
			return m, nil
		}
		m.rendering = false
		m.release()
		if msg.err != nil {
			m.errMsg = "render error: " + msg.err.Error()
			m.status = m.errMsg
			return m, nil
		}
		m.frame = msg.frame
		m.errMsg = ""
		m.status = fmt.Sprintf("view: %s  rendered %dx%d  limit=%d  in %s",
			m.view, msg.frame.dims.W, msg.frame.dims.H, msg.frame.limit, msg.frame.elapsed)
		if m.showStats {
			m.refreshStats()
		}
		return m, nil
	case savedMsg:
		if msg.err != nil {
			m.status = "save error: " + msg.err.Error()
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.gotoMode {
			switch msg.String() {
			case "esc":
				m.gotoMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				s := strings.TrimSpace(m.ta.Value())
				if s == "" {
					m.status = "goto: empty"
					return m, nil
				}
				b, ok := geom.ParseBounds(s)
				if !ok {
					m.status = "goto: expected UPPERLEFT LOWERRIGHT as RE,IM RE,IM"
					return m, nil
				}
				m.gotoMode = false
				m.ta.Blur()
				m.jump("goto", b)
				return m.requestFrame()
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showStats {
			switch msg.String() {
			case "t", "esc":
				m.showStats = false
				return m, nil
			case "ctrl+c", "q":
				m.release()
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.release()
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
		case "+", "=":
			m.bounds = m.bounds.Zoom(zoomStep)
			m.status = fmt.Sprintf("zoom: %.4g wide", m.bounds.Width())
			return m.requestFrame()
		case "-", "_":
			m.bounds = m.bounds.Zoom(1 / zoomStep)
			m.status = fmt.Sprintf("zoom: %.4g wide", m.bounds.Width())
			return m.requestFrame()
		case "up":
			if m.showSidebar {
				// the list owns vertical keys while it is open
				break
			}
			m.bounds = m.bounds.Pan(0, -panStep)
			return m.requestFrame()
		case "down":
			if m.showSidebar {
				break
			}
			m.bounds = m.bounds.Pan(0, panStep)
			return m.requestFrame()
		case "left":
			m.bounds = m.bounds.Pan(-panStep, 0)
			return m.requestFrame()
		case "right":
			m.bounds = m.bounds.Pan(panStep, 0)
			return m.requestFrame()
		case "[":
			m.limit = clamp(m.limit/2, minLimit, maxLimit)
			m.status = fmt.Sprintf("limit: %d", m.limit)
			return m.requestFrame()
		case "]":
			m.limit = clamp(m.limit*2, minLimit, maxLimit)
			m.status = fmt.Sprintf("limit: %d", m.limit)
			return m.requestFrame()
		case "r":
			m.jump("home", m.home)
			m.limit = clamp(m.cfg.Limit, minLimit, maxLimit)
			return m.requestFrame()
		case "tab":
			m.showSidebar = !m.showSidebar
			return m.resize()
		case "g":
			m.gotoMode = true
			m.ta.SetValue(fmtPoint(m.bounds.UpperLeft) + " " + fmtPoint(m.bounds.LowerRight))
			m.ta.Focus()
			m.status = "goto mode"
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "t":
			m.showStats = true
			m.refreshStats()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
			} else {
				m.inspectPopup = m.inspectCenter()
				m.status = "inspect popup"
			}
		case "s":
			m.saves++
			path := fmt.Sprintf("mandel-%03d.png", m.saves)
			m.status = "saving " + path + "…"
			return m, saveCmd(m.cfg, m.bounds, m.limit, path)
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(presetItem); ok {
					m.jump(it.p.Name, it.p.Bounds)
					return m.requestFrame()
				}
			}
		}
	case tea.MouseMsg:
		ox, oy, w, h := m.layout()
		cx, cy := msg.X-ox, msg.Y-oy
		inMap := cx >= 0 && cx < w && cy >= 0 && cy < h
		if inMap && msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.bounds = m.bounds.Zoom(zoomStep)
				return m.requestFrame()
			case tea.MouseButtonWheelDown:
				m.bounds = m.bounds.Zoom(1 / zoomStep)
				return m.requestFrame()
			}
		}
		m.hovering = false
		if inMap {
			if p, ok := m.cellToPoint(cx, cy); ok {
				m.hovering = true
				m.hoverCellX, m.hoverCellY = cx, cy
				m.hoverPoint = p
			}
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// resize recomputes the map area and re-renders when it changed.
func (m Model) resize() (Model, tea.Cmd) {
	_, _, w, h := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, h-2)
	}
	if w == m.mapW && h == m.mapH && m.frame.ok() {
		return m, nil
	}
	m.mapW, m.mapH = w, h
	return m.requestFrame()
}
