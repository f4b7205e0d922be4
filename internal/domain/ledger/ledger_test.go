package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddLine(t *testing.T) {
	t.Run("appends lines and keeps the total in sync", func(t *testing.T) {
		l := New()

		line, err := l.AddLine("Tea", 3, 2000)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, line.ID)
		assert.Equal(t, int64(6000), line.LineTotal)
		assert.Equal(t, int64(6000), l.Total())

		_, err = l.AddLine("Coffee", 2, 2500)
		require.NoError(t, err)
		assert.Equal(t, int64(11000), l.Total())
		assert.Equal(t, 2, l.Len())
	})

	t.Run("duplicate names are distinct lines", func(t *testing.T) {
		l := New()

		first, err := l.AddLine("Tea", 3, 2000)
		require.NoError(t, err)
		second, err := l.AddLine("Tea", 2, 2000)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, 2, l.Len())
		assert.Equal(t, int64(10000), l.Total())
	})

	t.Run("rejects invalid input explicitly", func(t *testing.T) {
		l := New()

		_, err := l.AddLine("", 1, 2000)
		assert.ErrorIs(t, err, ErrEmptyName)

		_, err = l.AddLine("Tea", 0, 2000)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = l.AddLine("Tea", 1, 0)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		assert.Equal(t, 0, l.Len())
		assert.Equal(t, int64(0), l.Total())
	})
}

func TestLedger_UpdateLine(t *testing.T) {
	t.Run("changes exactly one line", func(t *testing.T) {
		l := New()
		first, _ := l.AddLine("Tea", 3, 2000)
		second, _ := l.AddLine("Tea", 2, 2000)

		updated, err := l.UpdateLine(first.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity)
		assert.Equal(t, int64(10000), updated.LineTotal)

		lines := l.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, second, lines[1], "the other line must be untouched")
		assert.Equal(t, int64(14000), l.Total())
	})

	t.Run("rejects non-positive quantity without mutating", func(t *testing.T) {
		l := New()
		line, _ := l.AddLine("Tea", 3, 2000)

		_, err := l.UpdateLine(line.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, int64(6000), l.Total())
	})

	t.Run("unknown ID is an error", func(t *testing.T) {
		l := New()
		l.AddLine("Tea", 3, 2000)

		_, err := l.UpdateLine(uuid.New(), 2)
		assert.ErrorIs(t, err, ErrLineNotFound)
	})
}

func TestLedger_RemoveLines(t *testing.T) {
	t.Run("removes selected lines and recomputes", func(t *testing.T) {
		l := New()
		l.AddLine("Tea", 3, 2000)
		second, _ := l.AddLine("Tea", 2, 2000)

		removed, err := l.RemoveLines([]uuid.UUID{second.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, l.Len())
		assert.Equal(t, int64(6000), l.Total())
	})

	t.Run("empty selection is an error", func(t *testing.T) {
		l := New()
		l.AddLine("Tea", 3, 2000)

		_, err := l.RemoveLines(nil)
		assert.ErrorIs(t, err, ErrNothingSelected)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("unknown ID is a no-op", func(t *testing.T) {
		l := New()
		l.AddLine("Tea", 3, 2000)

		removed, err := l.RemoveLines([]uuid.UUID{uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, 0, removed)
		assert.Equal(t, int64(6000), l.Total())
	})
}

func TestLedger_TotalInvariant(t *testing.T) {
	l := New()

	inputs := []struct {
		name  string
		qty   int
		price int64
	}{
		{"Water Bottle", 1, 2000},
		{"Tea", 4, 2000},
		{"Lunch Plate", 2, 8000},
		{"Noodles", 3, 4500},
		{"Tea", 1, 2000},
	}

	var want int64
	for _, in := range inputs {
		_, err := l.AddLine(in.name, in.qty, in.price)
		require.NoError(t, err)
		want += in.price * int64(in.qty)
	}
	assert.Equal(t, want, l.Total())

	var sum int64
	for _, line := range l.Lines() {
		sum += line.LineTotal
	}
	assert.Equal(t, sum, l.Total())
}

// Mirrors the running-order walkthrough: two Tea lines, update the first,
// delete the second.
func TestLedger_RunningOrderScenario(t *testing.T) {
	l := New()

	first, err := l.AddLine("Tea", 3, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), l.Total())

	second, err := l.AddLine("Tea", 2, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), l.Total())

	updated, err := l.UpdateLine(first.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), updated.LineTotal)
	assert.Equal(t, int64(14000), l.Total())

	_, err = l.RemoveLines([]uuid.UUID{second.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), l.Total())
	assert.Equal(t, 1, l.Len())
}

func TestLedger_Clear(t *testing.T) {
	l := New()
	l.AddLine("Tea", 3, 2000)
	l.AddLine("Coffee", 1, 2500)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, int64(0), l.Total())
	assert.Empty(t, l.Lines())
}
