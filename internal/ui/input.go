package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/brevity/internal/nav"
)

// minSwipe is the shortest drag, in cells, that locks a swipe axis.
const minSwipe = 2

type dragAxis int

const (
	dragNone dragAxis = iota
	dragHorizontal
	dragVertical
)

// dragState tracks a left-button drag used as a swipe.
type dragState struct {
	active         bool
	startX, startY int
	dx, dy         int
	axis           dragAxis
}

// direction returns the swipe direction and the dragged distance along
// the locked axis. Pulling the content left or up reveals what follows.
func (d dragState) direction() (nav.Direction, int) {
	switch d.axis {
	case dragHorizontal:
		if d.dx < 0 {
			return nav.Right, d.dx
		}
		return nav.Left, d.dx
	case dragVertical:
		if d.dy < 0 {
			return nav.Down, d.dy
		}
		return nav.Up, d.dy
	default:
		return nav.None, 0
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.modal = newDiagnosticsModal(m.theme, m.facts(), m.opts.LogPath, m.width, m.height)
		return m, loadDiagnosticsCmd(m.opts.LogPath)

	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.Overview):
		m.toggleMode(modeOverview)
		return m, nil

	case key.Matches(msg, m.keys.Grid):
		m.toggleMode(modeGrid)
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.mode != modeSlides {
			m.mode = modeSlides
		} else {
			m.mode = modeOverview
		}
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		m.modal = newJumpModal(m.presentation.Entries())
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		cmd := m.copyLocation()
		return m, cmd
	}

	if m.mode != modeSlides && key.Matches(msg, m.keys.Confirm) {
		m.mode = modeSlides
		return m, nil
	}

	if !m.adapters.Keyboard {
		return m, nil
	}
	res, ok := m.keyNavigation(msg)
	if !ok {
		if m.opts.Debug {
			m.logger.Error("unsupported key", "key", msg.String())
		}
		return m, nil
	}
	m.observe(SourceKeyboard, res)
	cmd := m.frames()
	return m, cmd
}

// keyNavigation runs the navigation bound to msg.
func (m Model) keyNavigation(msg tea.KeyMsg) (nav.Result, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return m.nav.Navigate(nav.Up), true
	case key.Matches(msg, m.keys.Down):
		return m.nav.Navigate(nav.Down), true
	case key.Matches(msg, m.keys.Left):
		return m.nav.Navigate(nav.Left), true
	case key.Matches(msg, m.keys.Right):
		return m.nav.Navigate(nav.Right), true
	case key.Matches(msg, m.keys.Next):
		return m.nav.Next(), true
	case key.Matches(msg, m.keys.Prev):
		return m.nav.Prev(), true
	case key.Matches(msg, m.keys.First):
		return m.nav.First(), true
	case key.Matches(msg, m.keys.Last):
		return m.nav.Last(), true
	}
	return nav.Result{}, false
}

func (m *Model) toggleMode(mode viewMode) {
	if m.mode == mode {
		m.mode = modeSlides
		return
	}
	m.mode = mode
}

// handleMouse processes wheel, drag and click input.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if m.modal != nil {
		var cmd tea.Cmd
		m.modal, cmd, _ = m.modal.Update(msg, m.keys)
		return m, cmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelUp:
		if !m.adapters.Wheel || msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if m.nav.Busy() {
			return m, nil
		}
		dir := nav.Down
		if msg.Button == tea.MouseButtonWheelUp {
			dir = nav.Up
		}
		m.observe(SourceWheel, m.nav.Navigate(dir))
		cmd := m.frames()
		return m, cmd

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.drag = dragState{
			active: m.adapters.Touch && m.mode == modeSlides && !m.nav.Busy(),
			startX: msg.X,
			startY: msg.Y,
		}
		return m, nil

	case msg.Action == tea.MouseActionMotion:
		if m.drag.active {
			m.dragTo(msg.X, msg.Y)
		}
		return m, nil

	case msg.Action == tea.MouseActionRelease:
		return m.release(msg)
	}
	return m, nil
}

// dragTo follows the pointer once the drag has locked onto an axis.
func (m *Model) dragTo(x, y int) {
	dx, dy := x-m.drag.startX, y-m.drag.startY
	if m.drag.axis == dragNone {
		if abs(dx) < minSwipe && abs(dy) < minSwipe {
			return
		}
		if abs(dx) > abs(dy) {
			m.drag.axis = dragHorizontal
		} else {
			m.drag.axis = dragVertical
		}
	}
	if m.drag.axis == dragHorizontal {
		dy = 0
	} else {
		dx = 0
	}
	if !m.nav.Drag(dx, dy) {
		m.drag.active = false
		return
	}
	m.drag.dx, m.drag.dy = dx, dy
}

func (m Model) release(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	d := m.drag
	m.drag = dragState{}

	if d.active && d.axis != dragNone {
		dir, dragged := d.direction()
		layout := m.driver.Layout()
		extent := layout.Height
		if d.axis == dragHorizontal {
			extent = layout.Width
		}
		remaining := max(extent-abs(dragged), 0)
		m.observe(SourceTouch, m.nav.Swipe(dir, layout.DurationFor(remaining)))
		cmd := m.frames()
		return m, cmd
	}

	if !m.adapters.Click || m.mode != modeSlides || m.fullscreen {
		return m, nil
	}
	for _, c := range footerControls {
		if m.zones.Get(c.id).InBounds(msg) {
			m.observe(SourceClick, c.run(m.nav))
			cmd := m.frames()
			return m, cmd
		}
	}
	return m, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
