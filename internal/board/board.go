// Package board holds the in-memory list and the pending input, and applies
// the add, delete and reorder operations to them.
//
// A Board is not safe for concurrent use. It is meant to be driven from a
// single event loop.
package board

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/sortlist/internal/dnd"
	"github.com/idilsaglam/sortlist/internal/model"
	"github.com/idilsaglam/sortlist/internal/shared"
)

// IDFunc returns a fresh item id.
type IDFunc func() string

// SequentialIDs returns an IDFunc yielding "1", "2", "3", ...
func SequentialIDs() IDFunc {
	var n int
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}

// Pending is the draft for the next add.
type Pending struct {
	Text     string
	Category model.Category
}

// Confirmation describes a delete waiting for the user's answer.
type Confirmation struct {
	ID   string
	Item model.Item
}

// Option configures a Board.
type Option func(*Board)

// WithIDFunc overrides id generation.
func WithIDFunc(fn IDFunc) Option {
	return func(b *Board) {
		if fn != nil {
			b.newID = fn
		}
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// Board is the list state holder.
type Board struct {
	items   []model.Item
	pending Pending
	version uint64
	newID   IDFunc
	logger  *log.Logger
}

// New returns an empty board with the default pending category.
func New(opts ...Option) *Board {
	b := &Board{
		items:   []model.Item{},
		pending: Pending{Category: model.DefaultCategory()},
		newID:   shared.GenerateID,
		logger:  shared.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Items returns the current list. The slice is replaced, never modified,
// by later mutations, so callers may hold on to it.
func (b *Board) Items() []model.Item { return b.items }

// Len returns the number of items.
func (b *Board) Len() int { return len(b.items) }

// Version changes every time the list is replaced.
func (b *Board) Version() uint64 { return b.version }

// Pending returns the draft input.
func (b *Board) Pending() Pending { return b.pending }

// SetText updates the draft text.
func (b *Board) SetText(s string) { b.pending.Text = s }

// SetCategory updates the draft category. Unknown values are ignored.
func (b *Board) SetCategory(c model.Category) {
	if c.Valid() {
		b.pending.Category = c
	}
}

// Index returns the position of the item with id, or -1.
func (b *Board) Index(id string) int {
	for i, it := range b.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Counts tallies items per category.
func (b *Board) Counts() map[model.Category]int {
	out := make(map[model.Category]int, len(model.Categories()))
	for _, it := range b.items {
		out[it.Category]++
	}
	return out
}

// Add appends the pending draft as a new item and clears the draft text.
// The draft category is kept for the next add.
func (b *Board) Add() (model.Item, error) {
	it, err := b.AddItem(b.pending.Text, b.pending.Category)
	if err != nil {
		return model.Item{}, err
	}
	b.pending.Text = ""
	return it, nil
}

// AddItem appends an item without touching the pending draft.
func (b *Board) AddItem(content string, c model.Category) (model.Item, error) {
	if strings.TrimSpace(content) == "" {
		return model.Item{}, shared.ErrEmptyContent
	}
	if !c.Valid() {
		return model.Item{}, shared.ErrUnknownCategory
	}
	it := model.Item{ID: b.newID(), Content: content, Category: c}

	next := make([]model.Item, 0, len(b.items)+1)
	next = append(next, b.items...)
	next = append(next, it)
	b.replace(next)

	b.logger.Debug("item added", "id", it.ID, "category", it.Category, "len", len(next))
	return it, nil
}

// RequestDelete asks to delete the item with id. It returns false when no
// such item exists, in which case no confirmation should be shown.
func (b *Board) RequestDelete(id string) (Confirmation, bool) {
	i := b.Index(id)
	if i < 0 {
		return Confirmation{}, false
	}
	return Confirmation{ID: id, Item: b.items[i]}, true
}

// Resolve applies or discards a pending delete. It reports whether the list changed.
func (b *Board) Resolve(c Confirmation, accepted bool) bool {
	if !accepted {
		b.logger.Debug("delete declined", "id", c.ID)
		return false
	}
	return b.Delete(c.ID)
}

// Delete removes the item with id, keeping the order of the rest.
// Unknown ids are ignored.
func (b *Board) Delete(id string) bool {
	if b.Index(id) < 0 {
		return false
	}
	next := make([]model.Item, 0, len(b.items)-1)
	for _, it := range b.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	b.replace(next)
	b.logger.Debug("item deleted", "id", id, "len", len(next))
	return true
}

// Reorder applies a drop. Drops without a destination are ignored.
func (b *Board) Reorder(d dnd.Drop) bool {
	if d.Destination == nil {
		return false
	}
	from, to := d.Source, *d.Destination
	if from < 0 || from >= len(b.items) {
		return false
	}
	to = clamp(to, 0, len(b.items)-1)
	if from == to {
		return false
	}
	b.replace(Move(b.items, from, to))
	b.logger.Debug("item moved", "from", from, "to", to)
	return true
}

// Move returns a copy of items with the element at from moved to position to.
// Elements in between shift by one. It is a move, not a swap.
func Move(items []model.Item, from, to int) []model.Item {
	out := make([]model.Item, 0, len(items))
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	moved := items[from]
	out = append(out, model.Item{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}

func (b *Board) replace(next []model.Item) {
	b.items = next
	b.version++
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
