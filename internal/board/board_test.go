package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/sortlist/internal/dnd"
	"github.com/idilsaglam/sortlist/internal/model"
	"github.com/idilsaglam/sortlist/internal/shared"
)

func newBoard(t *testing.T, contents ...string) *Board {
	t.Helper()
	b := New(WithIDFunc(SequentialIDs()))
	for _, c := range contents {
		_, err := b.AddItem(c, model.Food)
		require.NoError(t, err)
	}
	return b
}

func contents(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Content)
	}
	return out
}

func TestNew(t *testing.T) {
	b := New()
	require.Empty(t, b.Items())
	require.Equal(t, Pending{Text: "", Category: model.Food}, b.Pending())
	require.Zero(t, b.Version())
}

func TestAdd(t *testing.T) {
	t.Run("appends to empty list", func(t *testing.T) {
		b := newBoard(t)
		b.SetText("Apple")
		b.SetCategory(model.Food)

		it, err := b.Add()
		require.NoError(t, err)
		require.Len(t, b.Items(), 1)
		require.Equal(t, it, b.Items()[0])
		require.Equal(t, "Apple", b.Items()[0].Content)
		require.Equal(t, model.Food, b.Items()[0].Category)
	})

	t.Run("appends at the end", func(t *testing.T) {
		b := newBoard(t, "A", "B")
		b.SetText("C")
		_, err := b.Add()
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "C"}, contents(b.Items()))
	})

	t.Run("keeps raw content", func(t *testing.T) {
		b := newBoard(t)
		b.SetText("  padded ")
		_, err := b.Add()
		require.NoError(t, err)
		require.Equal(t, "  padded ", b.Items()[0].Content)
	})

	t.Run("clears text and keeps category", func(t *testing.T) {
		b := newBoard(t)
		b.SetText("Drill")
		b.SetCategory(model.Mechanics)
		_, err := b.Add()
		require.NoError(t, err)
		require.Equal(t, Pending{Text: "", Category: model.Mechanics}, b.Pending())
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		b := newBoard(t, "A")
		before := b.Items()
		v := b.Version()
		b.SetText("   ")

		_, err := b.Add()
		require.True(t, errors.Is(err, shared.ErrEmptyContent))
		require.Equal(t, before, b.Items())
		require.Equal(t, v, b.Version())
		require.Equal(t, "   ", b.Pending().Text)
	})

	t.Run("ids stay unique after delete then add", func(t *testing.T) {
		b := New()
		first, err := b.AddItem("Apple", model.Food)
		require.NoError(t, err)
		require.True(t, b.Delete(first.ID))
		second, err := b.AddItem("Apple", model.Food)
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)
	})

	t.Run("replaces the slice", func(t *testing.T) {
		b := newBoard(t, "A")
		snapshot := b.Items()
		_, err := b.AddItem("B", model.Toys)
		require.NoError(t, err)
		require.Equal(t, []string{"A"}, contents(snapshot))
		require.Equal(t, uint64(2), b.Version())
	})
}

func TestSetCategory_IgnoresUnknown(t *testing.T) {
	b := New()
	b.SetCategory(model.Toys)
	b.SetCategory(model.Category(99))
	require.Equal(t, model.Toys, b.Pending().Category)
}

func TestDelete(t *testing.T) {
	t.Run("by id with confirmation accepted", func(t *testing.T) {
		b := newBoard(t, "Apple", "Banana")
		c, ok := b.RequestDelete("2")
		require.True(t, ok)
		require.Equal(t, "Banana", c.Item.Content)

		require.True(t, b.Resolve(c, true))
		require.Equal(t, []string{"Apple"}, contents(b.Items()))
	})

	t.Run("keeps order of the rest", func(t *testing.T) {
		b := newBoard(t, "A", "B", "C", "D")
		c, ok := b.RequestDelete("2")
		require.True(t, ok)
		require.True(t, b.Resolve(c, true))
		require.Equal(t, []string{"A", "C", "D"}, contents(b.Items()))
	})

	t.Run("declined is a no-op", func(t *testing.T) {
		b := newBoard(t, "Apple", "Banana")
		v := b.Version()
		c, ok := b.RequestDelete("2")
		require.True(t, ok)
		require.False(t, b.Resolve(c, false))
		require.Equal(t, []string{"Apple", "Banana"}, contents(b.Items()))
		require.Equal(t, v, b.Version())
	})

	t.Run("missing id asks nothing", func(t *testing.T) {
		b := newBoard(t, "Apple")
		v := b.Version()
		_, ok := b.RequestDelete("nope")
		require.False(t, ok)
		require.False(t, b.Delete("nope"))
		require.Equal(t, v, b.Version())
	})

	t.Run("id gone before answer", func(t *testing.T) {
		b := newBoard(t, "Apple")
		c, ok := b.RequestDelete("1")
		require.True(t, ok)
		require.True(t, b.Delete("1"))
		require.False(t, b.Resolve(c, true))
	})
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name string
		drop dnd.Drop
		want []string
		ok   bool
	}{
		{"first to last", dnd.To(0, 2), []string{"B", "C", "A"}, true},
		{"last to first", dnd.To(2, 0), []string{"C", "A", "B"}, true},
		{"middle down", dnd.To(1, 2), []string{"A", "C", "B"}, true},
		{"same place", dnd.To(1, 1), []string{"A", "B", "C"}, false},
		{"no destination", dnd.Nowhere(0), []string{"A", "B", "C"}, false},
		{"source out of range", dnd.To(7, 0), []string{"A", "B", "C"}, false},
		{"destination clamped", dnd.To(0, 9), []string{"B", "C", "A"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBoard(t, "A", "B", "C")
			v := b.Version()
			require.Equal(t, tt.ok, b.Reorder(tt.drop))
			require.Equal(t, tt.want, contents(b.Items()))
			if !tt.ok {
				require.Equal(t, v, b.Version())
			}
		})
	}
}

func TestMove_DoesNotTouchInput(t *testing.T) {
	b := newBoard(t, "A", "B", "C")
	in := b.Items()
	out := Move(in, 0, 2)
	require.Equal(t, []string{"A", "B", "C"}, contents(in))
	require.Equal(t, []string{"B", "C", "A"}, contents(out))
}

func TestCounts(t *testing.T) {
	b := New()
	for _, c := range []model.Category{model.Food, model.Toys, model.Food} {
		_, err := b.AddItem("x", c)
		require.NoError(t, err)
	}
	counts := b.Counts()
	require.Equal(t, 2, counts[model.Food])
	require.Equal(t, 1, counts[model.Toys])
	require.Zero(t, counts[model.Clothes])
}
