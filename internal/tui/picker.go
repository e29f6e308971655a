package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/sortlist/internal/model"
	"github.com/idilsaglam/sortlist/internal/ui"
)

// categoryItem adapts model.Category to bubbles/list.Item
type categoryItem struct {
	cat model.Category
}

func (i categoryItem) FilterValue() string { return i.cat.String() }

// categoryDelegate renders one category per line.
type categoryDelegate struct {
	theme ui.Theme
}

func (d categoryDelegate) Height() int                               { return 1 }
func (d categoryDelegate) Spacing() int                              { return 0 }
func (d categoryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d categoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(categoryItem)
	if !ok {
		return
	}
	prefix := "  "
	text := it.cat.String()
	if index == m.Index() {
		prefix = d.theme.Selected.Render(d.theme.Cursor + " ")
		text = d.theme.Accent.Render(text)
	}
	fmt.Fprint(w, prefix+text)
}

func newPicker(t ui.Theme) list.Model {
	cats := model.Categories()
	items := make([]list.Item, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryItem{cat: c})
	}

	l := list.New(items, categoryDelegate{theme: t}, 24, len(cats)+4)
	l.Title = "Category"
	l.Styles.Title = t.Title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	return l
}

// selectCategory moves the picker cursor onto c.
func selectCategory(l *list.Model, c model.Category) {
	for i, it := range l.Items() {
		if ci, ok := it.(categoryItem); ok && ci.cat == c {
			l.Select(i)
			return
		}
	}
}

func pickedCategory(l list.Model) (model.Category, bool) {
	ci, ok := l.SelectedItem().(categoryItem)
	if !ok {
		return 0, false
	}
	return ci.cat, true
}
