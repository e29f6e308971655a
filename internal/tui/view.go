package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// top border of the frame
	frameTop = 1
	// border and horizontal padding on the left of every row
	rowLeft = 2

	lenCategoryField = 15
)

func (m Model) View() string {
	lines := []string{m.fit(m.headerView()), m.fit(m.inputView()), ""}
	lines = append(lines, m.rowsView()...)
	lines = append(lines, "", m.footerView())
	return m.frame().Render(strings.Join(lines, "\n"))
}

func (m Model) frame() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(m.theme.Border).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Width(m.contentWidth() + 2)
}

func (m Model) headerView() string {
	n := m.board.Len()
	noun := "items"
	if n == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%s   %s", m.theme.Title.Render("Items"), m.theme.Muted.Render(fmt.Sprintf("%d %s", n, noun)))
}

func (m Model) inputView() string {
	name := m.board.Pending().Category.String()
	field := fmt.Sprintf("‹ %-*s ›", lenCategoryField-4, name)
	return m.input.View() + "  " + m.theme.Accent.Render(field)
}

func (m Model) rowsView() []string {
	items := m.board.Items()
	if len(items) == 0 {
		return []string{m.theme.Muted.Render("No items yet. Type a label and press enter.")}
	}
	end := min(m.offset+m.visibleRows(), len(items))
	out := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		out = append(out, m.rowView(i))
	}
	return out
}

// rowView renders "content (category)" with a delete trigger flush right.
func (m Model) rowView(i int) string {
	it := m.board.Items()[i]
	t := m.theme
	markW := lipgloss.Width(t.DeleteMark)
	leftW := m.contentWidth() - markW - 1

	prefix := "  "
	if i == m.cursor {
		prefix = t.Cursor + " "
	}
	left := ansi.Truncate(prefix+t.Grip+" "+it.Label(), leftW, "…")
	if pad := leftW - lipgloss.Width(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	style := t.Row
	hover, hovering := m.drag.Hover()
	switch {
	case m.drag.Dragging(i):
		style = t.Dragging
	case hovering && hover == i:
		style = t.DropTarget
	case i == m.cursor:
		style = t.Accent
	}
	return style.Render(left) + " " + t.Delete.Render(t.DeleteMark)
}

func (m Model) footerView() string {
	t := m.theme
	switch m.mode {
	case modeNotice:
		return t.Notice.Render(t.Error.Render(m.notice) + "\n" + t.Muted.Render("enter: ok"))
	case modeConfirm:
		body := "Are you sure you want to delete this item?"
		if m.confirm != nil {
			body += "\n" + m.confirm.Item.Label()
		}
		return t.Confirm.Render(body + "\n" + t.Muted.Render("y: yes   n: no"))
	case modePicker:
		return m.picker.View()
	}
	if m.grabbed {
		return t.Pending.Render("moving: ↑/↓ choose spot   ctrl+g/enter drop   esc cancel")
	}
	return m.help.View(m.keys)
}

// fit cuts s so it never wraps inside the frame.
func (m Model) fit(s string) string {
	return ansi.Truncate(s, m.contentWidth(), "")
}

func (m Model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	return max(20, w-4)
}

func (m Model) visibleRows() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	return max(1, h-m.listTop()-2-lipgloss.Height(m.footerView()))
}

// listTop is the screen line of the first row, measured from what View draws
// above the list.
func (m Model) listTop() int {
	above := []string{m.fit(m.headerView()), m.fit(m.inputView()), ""}
	return frameTop + lipgloss.Height(strings.Join(above, "\n"))
}

// rowAt maps a screen line to an item index.
func (m Model) rowAt(y int) (int, bool) {
	top := m.listTop()
	if y < top {
		return 0, false
	}
	end := min(m.offset+m.visibleRows(), m.board.Len())
	for i := m.offset; i < end; i++ {
		h := lipgloss.Height(m.rowView(i))
		if y < top+h {
			return i, true
		}
		top += h
	}
	return 0, false
}

// onDeleteMark reports whether screen column x falls on a row's delete trigger.
func (m Model) onDeleteMark(x int) bool {
	markW := lipgloss.Width(m.theme.DeleteMark)
	start := rowLeft + m.contentWidth() - markW
	return x >= start && x < start+markW
}
