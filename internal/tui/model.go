package tui

import (
	"context"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zeromicro/go-zero/core/syncx"

	"mandelview/internal/config"
	"mandelview/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2

	minLimit = 16
	maxLimit = 4096
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	cfg    config.Config
	home   geom.Bounds
	bounds geom.Bounds
	limit  int

	view   string // name of the last preset or jump
	status string
	errMsg string

	// Presets sidebar
	l list.Model

	// Latest frame and the sequence number of the newest request
	frame     frame
	seq       int
	rendering bool
	flight    syncx.SingleFlight
	// context of the render in flight; replaced and cancelled when the view changes
	renderKey string
	renderGen int
	renderCtx context.Context
	cancel    context.CancelFunc

	// map area in cells, kept in sync with View's layout
	mapW int
	mapH int

	// goto mode
	gotoMode bool
	ta       textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverPoint complex128

	// stats table
	showStats bool
	tbl       table.Model

	saves int
}

// New builds a viewer starting at b.
func New(cfg config.Config, b geom.Bounds) Model {
	limit := clamp(cfg.Limit, minLimit, maxLimit)
	m := Model{
		helpVisible: true,
		cfg:         cfg,
		home:        b,
		bounds:      b,
		limit:       limit,
		view:        "home",
		status:      "mandelview ready",
		flight:      syncx.NewSingleFlight(),
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(presetItems(), d, 0, 0)
	m.l.Title = "Presets"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "UPPERLEFT LOWERRIGHT, e.g. -1.20,0.35 -1,0.20. Enter to jump; Esc to cancel."
	m.ta.CharLimit = 200
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	// stats table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Bounds is the current requested view.
func (m Model) Bounds() geom.Bounds { return m.bounds }

// Limit is the current iteration limit.
func (m Model) Limit() int { return m.limit }

// layout computes the map origin and size in cells. View and the mouse
// handler both rely on it.
func (m Model) layout() (originX, originY, w, h int) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	w = max(10, contentWidth-sw-1)
	h = contentHeight
	if m.showSidebar {
		originX = sw + 1
	}
	return originX, headerHeight, w, h
}
