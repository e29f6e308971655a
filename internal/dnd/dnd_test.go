package dnd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_PointerDrag(t *testing.T) {
	var tr Tracker
	require.False(t, tr.Active())

	tr.Press(0)
	require.True(t, tr.Dragging(0))
	require.False(t, tr.Dragging(1))

	tr.Motion(2, true)
	h, ok := tr.Hover()
	require.True(t, ok)
	require.Equal(t, 2, h)

	drop, ok := tr.Release(2, true)
	require.True(t, ok)
	require.Equal(t, 0, drop.Source)
	require.NotNil(t, drop.Destination)
	require.Equal(t, 2, *drop.Destination)
	require.False(t, tr.Active())
	require.False(t, tr.Dragging(0))
}

func TestTracker_ReleaseOutside(t *testing.T) {
	var tr Tracker
	tr.Press(1)
	tr.Motion(0, false)
	_, ok := tr.Hover()
	require.False(t, ok)

	drop, ok := tr.Release(0, false)
	require.True(t, ok)
	require.Equal(t, 1, drop.Source)
	require.Nil(t, drop.Destination)
}

func TestTracker_ReleaseWithoutPress(t *testing.T) {
	var tr Tracker
	tr.Motion(3, true)
	_, ok := tr.Release(3, true)
	require.False(t, ok)
}

func TestTracker_KeyboardGrab(t *testing.T) {
	var tr Tracker
	tr.Grab(1)
	tr.Shift(-5, 3)
	h, _ := tr.Hover()
	require.Equal(t, 0, h)

	tr.Shift(10, 3)
	h, _ = tr.Hover()
	require.Equal(t, 2, h)

	drop, ok := tr.Commit()
	require.True(t, ok)
	require.Equal(t, To(1, 2), drop)
}

func TestTracker_Cancel(t *testing.T) {
	var tr Tracker
	tr.Grab(0)
	tr.Cancel()
	require.False(t, tr.Active())
	_, ok := tr.Commit()
	require.False(t, ok)
}
