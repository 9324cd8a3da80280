package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryN(n int) Entry {
	return NewEntry(fmt.Sprintf("msg %d", n), time.Date(2026, 1, 1, 12, 0, n, 0, time.UTC))
}

func TestHistory_ZeroValueEmpty(t *testing.T) {
	var h History
	assert.Equal(t, 0, h.Len())
	assert.Nil(t, h.Entries())
}

func TestHistory_PushPrepends(t *testing.T) {
	var h History
	a, b := entryN(1), entryN(2)
	h.Push(a)
	h.Push(b)

	got := h.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestHistory_BoundedAtLimit(t *testing.T) {
	var h History
	var pushed []Entry
	for i := 1; i <= 25; i++ {
		e := entryN(i)
		pushed = append(pushed, e)
		h.Push(e)
		require.LessOrEqual(t, h.Len(), HistoryLimit)
	}

	got := h.Entries()
	require.Len(t, got, HistoryLimit)
	for i, e := range got {
		want := pushed[len(pushed)-1-i]
		assert.Equal(t, want.ID, e.ID, "position %d", i)
	}
}

func TestHistory_TenthEntryEvictsOldest(t *testing.T) {
	var h History
	first := entryN(1)
	h.Push(first)
	for i := 2; i <= 9; i++ {
		h.Push(entryN(i))
	}
	require.Equal(t, HistoryLimit, h.Len())
	assert.Equal(t, first.ID, h.Entries()[HistoryLimit-1].ID)

	tenth := entryN(10)
	h.Push(tenth)

	got := h.Entries()
	require.Len(t, got, HistoryLimit)
	assert.Equal(t, tenth.ID, got[0].ID)
	for _, e := range got {
		assert.NotEqual(t, first.ID, e.ID, "oldest entry should have been evicted")
	}
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	var h History
	h.Push(entryN(1))

	got := h.Entries()
	got[0].Message = "mutated"

	assert.Equal(t, "msg 1", h.Entries()[0].Message)
}
