package menubar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"menukit.dev/menukit/internal/menu"
)

func init() {
	// Force color output for all tests in this file to ensure ANSI escape codes are generated
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func testBar() *menu.Tree {
	file := menu.New().
		Leaf("Open", func(any) {}).
		Delimiter().
		Leaf("Quit", func(any) {})

	edit := menu.New().
		Leaf("Cut", func(any) {}).
		Leaf("Paste", func(any) {})

	return menu.New().
		Subtree("File", file).
		Subtree("Edit", edit).
		Item(menu.NewLeaf("Broken", func(any) {}).Disabled())
}

func TestModel_InitialCursorSkipsUnselectable(t *testing.T) {
	bar := menu.New().
		Delimiter().
		Item(menu.NewLeaf("Off", func(any) {}).Disabled()).
		Leaf("On", func(any) {})

	m := New(bar, nil)
	require.Equal(t, 2, m.Cursor())
}

func TestModel_BarNavigationSkipsAndWraps(t *testing.T) {
	m := New(testBar(), nil)
	require.Equal(t, 0, m.Cursor())

	// "Broken" is disabled, so right from Edit wraps back to File.
	m, _ = m.Update(keyPress(tea.KeyRight))
	require.Equal(t, 1, m.Cursor())
	m, _ = m.Update(keyPress(tea.KeyRight))
	require.Equal(t, 0, m.Cursor())

	m, _ = m.Update(keyPress(tea.KeyLeft))
	require.Equal(t, 1, m.Cursor())
}

func TestModel_OpenAndClosePanels(t *testing.T) {
	m := New(testBar(), nil)

	m, _ = m.Update(keyPress(tea.KeyEnter))
	require.True(t, m.Open())
	require.Len(t, m.open, 1)
	require.Equal(t, 0, m.open[0].cursor)

	// Down skips the delimiter between Open and Quit.
	m, _ = m.Update(keyPress(tea.KeyDown))
	require.Equal(t, 2, m.open[0].cursor)

	m, _ = m.Update(keyPress(tea.KeyEsc))
	require.False(t, m.Open())
}

func TestModel_ActivateLeafRunsCallbackWithHost(t *testing.T) {
	type app struct{ last string }

	host := &app{}
	bar := menu.New().Subtree("File", menu.New().
		Leaf("Open", func(h any) { h.(*app).last = "open" }))

	m := New(bar, host)
	m, _ = m.Update(keyPress(tea.KeyEnter)) // open panel
	m, cmd := m.Update(keyPress(tea.KeyEnter))

	require.Equal(t, "open", host.last)
	require.False(t, m.Open(), "activation closes all panels")
	require.NotNil(t, cmd)
	require.Equal(t, ActivatedMsg{Label: "Open"}, cmd())
}

func TestModel_DisabledEntriesAreNotActivatable(t *testing.T) {
	invoked := false
	bar := menu.New().Subtree("File", menu.New().
		Item(menu.NewLeaf("Open", func(any) { invoked = true }).Disabled()).
		Leaf("Quit", func(any) {}))

	m := New(bar, nil)
	m, _ = m.Update(keyPress(tea.KeyEnter))
	require.Equal(t, 1, m.open[0].cursor, "cursor starts past the disabled entry")

	// Force the cursor back onto the disabled entry and try to activate it.
	m.open[0].cursor = 0
	m, cmd := m.Update(keyPress(tea.KeyEnter))
	require.False(t, invoked)
	require.Nil(t, cmd)
	require.True(t, m.Open())
}

func TestModel_DescendIntoNestedSubtree(t *testing.T) {
	inner := menu.New().Leaf("Plain Text", func(any) {})
	bar := menu.New().Subtree("Edit", menu.New().
		Leaf("Copy", func(any) {}).
		Subtree("Paste Special", inner))

	m := New(bar, nil)
	m, _ = m.Update(keyPress(tea.KeyEnter))
	m, _ = m.Update(keyPress(tea.KeyDown))
	m, _ = m.Update(keyPress(tea.KeyRight))

	require.Len(t, m.open, 2)
	require.Same(t, inner, m.open[1].tree)

	// Left backs out one level only.
	m, _ = m.Update(keyPress(tea.KeyLeft))
	require.Len(t, m.open, 1)
}

func TestModel_NavigationDoesNotForkSharedSubtrees(t *testing.T) {
	shared := menu.New().Leaf("Cut", func(any) {})
	bar := menu.New().Subtree("Edit", shared)
	clone := bar.Clone()

	m := New(bar, nil)
	m, _ = m.Update(keyPress(tea.KeyEnter))
	m, _ = m.Update(keyPress(tea.KeyDown))
	m, _ = m.Update(keyPress(tea.KeyEsc))

	a, _ := bar.Get(0).Subtree()
	b, _ := clone.Get(0).Subtree()
	require.Same(t, a, b, "read-only navigation must not fork shared content")
}

func TestModel_ViewShowsLabelsVerbatim(t *testing.T) {
	bar := menu.New().
		Subtree("File", menu.New().
			Leaf("Open", func(any) {}).
			Delimiter().
			Leaf("Quit", func(any) {})).
		Leaf("About", func(any) {})

	m := New(bar, nil)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.Update(keyPress(tea.KeyEnter))

	view := m.View()
	for _, label := range []string{"File", "About", "Open", "Quit", menu.DelimiterLabel} {
		require.Contains(t, view, label)
	}
}
