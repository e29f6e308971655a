package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/sortlist/internal/board"
	"github.com/idilsaglam/sortlist/internal/dnd"
	"github.com/idilsaglam/sortlist/internal/shared"
	"github.com/idilsaglam/sortlist/internal/ui"
)

const emptyNotice = "Please enter a value."

type mode int

const (
	modeInput mode = iota
	modeNotice
	modeConfirm
	modePicker
)

// Options tune the list screen.
type Options struct {
	Theme       ui.Theme
	Placeholder string
	CharLimit   int
	AltScreen   bool
	Mouse       bool
	Logger      *log.Logger
}

// Model is the Bubble Tea model for the list screen. All state changes go
// through the board; the model only keeps what the screen needs.
type Model struct {
	board  *board.Board
	theme  ui.Theme
	keys   keyMap
	help   help.Model
	logger *log.Logger

	mode   mode
	input  textinput.Model
	picker list.Model

	cursor int
	offset int

	drag    dnd.Tracker
	grabbed bool // drag was started from the keyboard

	notice  string
	notices int
	confirm *board.Confirmation

	width  int
	height int
}

// New builds the model around b.
func New(b *board.Board, opts Options) Model {
	if opts.Theme.Name == "" {
		opts.Theme = ui.ThemeFor("classic")
	}
	if opts.Logger == nil {
		opts.Logger = shared.DiscardLogger()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	if ti.Placeholder == "" {
		ti.Placeholder = "Enter item"
	}
	ti.CharLimit = opts.CharLimit
	ti.SetValue(b.Pending().Text)
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = opts.Theme.Accent
	h.Styles.ShortDesc = opts.Theme.Muted
	h.Styles.FullKey = opts.Theme.Accent
	h.Styles.FullDesc = opts.Theme.Muted

	return Model{
		board:  b,
		theme:  opts.Theme,
		keys:   newKeyMap(),
		help:   h,
		logger: opts.Logger,
		input:  ti,
		picker: newPicker(opts.Theme),
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = m.contentWidth()
		// prompt, text, cursor cell and the gap before the category field
		m.input.Width = max(1, m.contentWidth()-lenCategoryField-lipgloss.Width(m.input.Prompt)-3)
		m.ensureVisible(m.cursor)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeNotice:
		return m.updateNotice(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	case modePicker:
		return m.updatePicker(msg)
	}
	return m.updateInput(msg)
}

// Notices returns how many blocking notices have been raised.
func (m Model) Notices() int { return m.notices }

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if m.grabbed {
			return m, nil
		}
		return m.updateMouse(msg), nil
	case tea.KeyMsg:
		if m.grabbed {
			return m.updateGrab(msg), nil
		}
		switch {
		case key.Matches(msg, m.keys.add):
			m.addItem()
			return m, nil
		case key.Matches(msg, m.keys.nextCat):
			m.board.SetCategory(m.board.Pending().Category.Next(1))
			return m, nil
		case key.Matches(msg, m.keys.prevCat):
			m.board.SetCategory(m.board.Pending().Category.Next(-1))
			return m, nil
		case key.Matches(msg, m.keys.picker):
			selectCategory(&m.picker, m.board.Pending().Category)
			m.mode = modePicker
			return m, nil
		case key.Matches(msg, m.keys.up):
			m.moveCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.down):
			m.moveCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.del),
			key.Matches(msg, m.keys.delEmpty) && m.input.Value() == "":
			m.requestDelete(m.cursor)
			return m, nil
		case key.Matches(msg, m.keys.grab):
			if m.cursor < m.board.Len() {
				m.drag.Grab(m.cursor)
				m.grabbed = true
			}
			return m, nil
		case key.Matches(msg, m.keys.cancel):
			m.drag.Cancel()
			return m, nil
		case key.Matches(msg, m.keys.showHelp):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.board.SetText(m.input.Value())
	return m, cmd
}

func (m Model) updateGrab(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.up):
		m.drag.Shift(-1, m.board.Len())
	case key.Matches(msg, m.keys.down):
		m.drag.Shift(1, m.board.Len())
	case key.Matches(msg, m.keys.grab), key.Matches(msg, m.keys.add):
		drop, ok := m.drag.Commit()
		m.grabbed = false
		if ok {
			m.applyDrop(drop)
		}
		return m
	case key.Matches(msg, m.keys.cancel):
		m.drag.Cancel()
		m.grabbed = false
		return m
	}
	if h, ok := m.drag.Hover(); ok {
		m.ensureVisible(h)
	}
	return m
}

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	row, onRow := m.rowAt(msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if !onRow {
				return m
			}
			m.cursor = row
			if m.onDeleteMark(msg.X) {
				m.requestDelete(row)
				return m
			}
			m.drag.Press(row)
		case tea.MouseButtonWheelUp:
			m.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			m.moveCursor(1)
		}
	case tea.MouseActionMotion:
		m.drag.Motion(row, onRow)
	case tea.MouseActionRelease:
		if drop, ok := m.drag.Release(row, onRow); ok {
			m.applyDrop(drop)
		}
	}
	return m
}

func (m Model) updateNotice(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.dismiss) {
			m.closeNotice()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.closeNotice()
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.confirm == nil {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.yes):
		m.resolveDelete(true)
	case key.Matches(k, m.keys.no):
		m.resolveDelete(false)
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.add):
			if c, ok := pickedCategory(m.picker); ok {
				m.board.SetCategory(c)
			}
			m.mode = modeInput
			return m, nil
		case key.Matches(k, m.keys.cancel):
			m.mode = modeInput
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) addItem() {
	m.board.SetText(m.input.Value())
	it, err := m.board.Add()
	if err != nil {
		if errors.Is(err, shared.ErrEmptyContent) {
			m.showNotice(emptyNotice)
			return
		}
		m.logger.Error("add failed", "err", err)
		return
	}
	m.input.SetValue(m.board.Pending().Text)
	m.cursor = m.board.Index(it.ID)
	m.ensureVisible(m.cursor)
}

func (m *Model) requestDelete(row int) {
	items := m.board.Items()
	if row < 0 || row >= len(items) {
		return
	}
	c, ok := m.board.RequestDelete(items[row].ID)
	if !ok {
		return
	}
	m.drag.Cancel()
	m.grabbed = false
	m.confirm = &c
	m.mode = modeConfirm
}

func (m *Model) resolveDelete(accepted bool) {
	if m.board.Resolve(*m.confirm, accepted) {
		m.cursor = min(m.cursor, max(0, m.board.Len()-1))
		m.ensureVisible(m.cursor)
	}
	m.confirm = nil
	m.mode = modeInput
}

func (m *Model) applyDrop(d dnd.Drop) {
	if !m.board.Reorder(d) {
		return
	}
	m.cursor = min(max(*d.Destination, 0), m.board.Len()-1)
	m.ensureVisible(m.cursor)
}

func (m *Model) showNotice(text string) {
	m.notice = text
	m.notices++
	m.mode = modeNotice
	m.logger.Debug("notice", "text", text)
}

func (m *Model) closeNotice() {
	m.notice = ""
	m.mode = modeInput
}

func (m *Model) moveCursor(delta int) {
	n := m.board.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
	m.ensureVisible(m.cursor)
}

// ensureVisible scrolls so that row is inside the visible window.
func (m *Model) ensureVisible(row int) {
	vis := m.visibleRows()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+vis {
		m.offset = row - vis + 1
	}
	m.offset = min(m.offset, max(0, m.board.Len()-vis))
	m.offset = max(m.offset, 0)
}
