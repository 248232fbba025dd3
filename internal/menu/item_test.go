package menu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItem_Kinds(t *testing.T) {
	t.Parallel()

	leaf := NewLeaf("Open", noop)
	require.True(t, leaf.IsLeaf())
	require.False(t, leaf.IsSubtree())
	require.False(t, leaf.IsDelimiter())
	require.Equal(t, "Open", leaf.Label())

	sub := NewSubtree("Recent", New())
	require.True(t, sub.IsSubtree())
	require.False(t, sub.IsLeaf())
	require.False(t, sub.IsDelimiter())

	del := NewDelimiter()
	require.True(t, del.IsDelimiter())
	require.False(t, del.IsLeaf())
	require.False(t, del.IsSubtree())
}

func TestItem_EnabledState(t *testing.T) {
	t.Parallel()

	t.Run("leaf and subtree start enabled", func(t *testing.T) {
		t.Parallel()
		require.True(t, NewLeaf("Open", noop).IsEnabled())
		require.True(t, NewSubtree("Recent", New()).IsEnabled())
	})

	t.Run("disable sticks", func(t *testing.T) {
		t.Parallel()
		leaf := NewLeaf("Open", noop)
		leaf.Disable()
		require.False(t, leaf.IsEnabled())
	})

	t.Run("chainable disabled variant", func(t *testing.T) {
		t.Parallel()
		leaf := NewLeaf("Open", noop).Disabled()
		require.False(t, leaf.IsEnabled())
	})

	t.Run("delimiter is always disabled", func(t *testing.T) {
		t.Parallel()
		del := NewDelimiter()
		require.False(t, del.IsEnabled())
		del.Disable()
		require.False(t, del.IsEnabled())
		require.Equal(t, DelimiterLabel, del.Label())
	})
}

func TestItem_AsSubtree(t *testing.T) {
	t.Parallel()

	if _, ok := NewLeaf("Open", noop).AsSubtree(); ok {
		t.Fatal("leaf must not expose a subtree")
	}
	if _, ok := NewDelimiter().AsSubtree(); ok {
		t.Fatal("delimiter must not expose a subtree")
	}

	content := New().Leaf("Cut", noop)
	sub, ok := NewSubtree("Edit", content).AsSubtree()
	require.True(t, ok)
	require.Same(t, content, sub)
}

func TestItem_CallbackIsSharedAndReusable(t *testing.T) {
	t.Parallel()

	type app struct{ count int }

	item := NewLeaf("Increment", func(host any) {
		host.(*app).count++
	})

	host := &app{}
	cb := item.Callback()
	require.NotNil(t, cb)

	// The stored handle is not consumed on use.
	cb(host)
	cb(host)
	item.Callback()(host)
	require.Equal(t, 3, host.count)

	// Clones share the same handle.
	clone := item.Clone()
	clone.Callback()(host)
	require.Equal(t, 4, host.count)

	require.Nil(t, NewDelimiter().Callback())
	require.Nil(t, NewSubtree("Recent", New()).Callback())
}

func TestItem_CloneIsIndependentState(t *testing.T) {
	t.Parallel()

	item := NewLeaf("Open", noop)
	clone := item.Clone()
	clone.Disable()

	require.True(t, item.IsEnabled())
	require.False(t, clone.IsEnabled())
}
