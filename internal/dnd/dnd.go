// Package dnd turns low-level pointer and keyboard gestures into discrete
// drop events. It owns the idle/dragging state of a row; callers only read it.
package dnd

// Drop is the result of a finished drag gesture.
// Destination is nil when the gesture ended outside any valid target.
type Drop struct {
	Source      int
	Destination *int
}

// To builds a drop with a destination.
func To(source, destination int) Drop {
	return Drop{Source: source, Destination: &destination}
}

// Nowhere builds a drop that has no destination.
func Nowhere(source int) Drop {
	return Drop{Source: source}
}

// Tracker follows a single drag gesture at a time.
type Tracker struct {
	active   bool
	source   int
	hover    int
	hovering bool
}

// Active reports whether a drag is in progress.
func (t *Tracker) Active() bool { return t.active }

// Source returns the index being dragged.
func (t *Tracker) Source() (int, bool) { return t.source, t.active }

// Dragging reports whether row is the one being dragged.
func (t *Tracker) Dragging(row int) bool { return t.active && t.source == row }

// Hover returns the row the drag is currently over.
func (t *Tracker) Hover() (int, bool) {
	if !t.active || !t.hovering {
		return 0, false
	}
	return t.hover, true
}

// Press starts a pointer drag on row.
func (t *Tracker) Press(row int) {
	t.active = true
	t.source = row
	t.hover = row
	t.hovering = true
}

// Motion updates the hover target. ok is false when the pointer is outside every row.
func (t *Tracker) Motion(row int, ok bool) {
	if !t.active {
		return
	}
	t.hover = row
	t.hovering = ok
}

// Release ends a pointer drag. It returns false if no drag was in progress.
func (t *Tracker) Release(row int, ok bool) (Drop, bool) {
	if !t.active {
		return Drop{}, false
	}
	src := t.source
	t.reset()
	if !ok {
		return Nowhere(src), true
	}
	return To(src, row), true
}

// Grab starts a keyboard drag on row.
func (t *Tracker) Grab(row int) {
	t.Press(row)
}

// Shift moves the hover target by delta, clamped to [0, n-1].
func (t *Tracker) Shift(delta, n int) {
	if !t.active || n <= 0 {
		return
	}
	h := t.hover + delta
	if h < 0 {
		h = 0
	}
	if h > n-1 {
		h = n - 1
	}
	t.hover = h
	t.hovering = true
}

// Commit ends a keyboard drag, dropping on the current hover row.
func (t *Tracker) Commit() (Drop, bool) {
	if !t.active {
		return Drop{}, false
	}
	return t.Release(t.hover, t.hovering)
}

// Cancel abandons the drag. No drop is produced.
func (t *Tracker) Cancel() {
	t.reset()
}

func (t *Tracker) reset() {
	*t = Tracker{}
}
