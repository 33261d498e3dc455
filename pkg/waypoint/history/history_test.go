package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
)

func TestPushPop(t *testing.T) {
	h := New()
	assert.True(t, h.IsEmpty())

	home := scheme.Screen("home", nil)
	profile := scheme.Screen("profile", scheme.NewParams("tab", "settings"))

	require.True(t, h.Push(home))
	require.True(t, h.Push(profile))
	assert.Equal(t, 2, h.Len())

	top, ok := h.Peek()
	require.True(t, ok)
	assert.True(t, top.Equal(profile))

	got, ok := h.Pop()
	require.True(t, ok)
	assert.True(t, got.Equal(profile))

	got, ok = h.Pop()
	require.True(t, ok)
	assert.True(t, got.Equal(home))

	_, ok = h.Pop()
	assert.False(t, ok)
	_, ok = h.Peek()
	assert.False(t, ok)
}

func TestPush_RejectsZero(t *testing.T) {
	h := New()
	assert.False(t, h.Push(scheme.Scheme{}))
	assert.True(t, h.IsEmpty())
}

func TestPush_NoDeduplication(t *testing.T) {
	h := New()
	h.Push(scheme.Screen("home", nil))
	h.Push(scheme.Screen("home", nil))
	assert.Equal(t, 2, h.Len())
}

func TestWithCapacity_EvictsOldest(t *testing.T) {
	h := New(WithCapacity(2))
	assert.Equal(t, 2, h.Capacity())

	h.Push(scheme.Screen("a", nil))
	h.Push(scheme.Screen("b", nil))
	h.Push(scheme.Scene("c"))

	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].ID())
	assert.Equal(t, "c", entries[1].ID())
}

func TestWithCapacity_NonPositiveIsUnbounded(t *testing.T) {
	h := New(WithCapacity(0))
	for i := 0; i < 100; i++ {
		h.Push(scheme.Screen("a", nil))
	}
	assert.Equal(t, 100, h.Len())
	assert.Zero(t, h.Capacity())
}

func TestEntriesIsACopy(t *testing.T) {
	h := New()
	h.Push(scheme.Screen("a", nil))

	entries := h.Entries()
	entries[0] = scheme.Screen("b", nil)

	top, _ := h.Peek()
	assert.Equal(t, "a", top.ID())
}

func TestClear(t *testing.T) {
	h := New()
	h.Push(scheme.Screen("a", nil))
	h.Clear()
	assert.True(t, h.IsEmpty())
}

func TestPopAndClear_ReleaseEntries(t *testing.T) {
	h := New(WithCapacity(2))
	h.Push(scheme.Screen("home", nil))
	h.Push(scheme.Screen("profile", scheme.NewParams("tab", "1")))
	h.Push(scheme.Screen("settings", nil)) // evicts home

	backing := h.entries[:cap(h.entries)]
	_, ok := h.Pop()
	require.True(t, ok)
	assert.True(t, backing[1].IsZero(), "popped slot is zeroed")
	assert.Equal(t, "profile", backing[0].ID())

	h.Clear()
	assert.True(t, backing[0].IsZero(), "cleared slots are zeroed")
	assert.True(t, h.IsEmpty())
}
