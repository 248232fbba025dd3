// Package menubar provides a bubbletea component that renders a menu tree
// as a horizontal menu bar with drop-down panels and drives keyboard
// navigation over it.
package menubar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"menukit.dev/menukit/internal/menu"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Help   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Select, k.Back, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Up, k.Down},
		{k.Select, k.Back},
		{k.Help},
	}
}

var defaultKeys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ActivatedMsg is emitted after an enabled leaf entry was triggered. The
// entry's callback has already run by the time the message is delivered.
type ActivatedMsg struct {
	Label string
}

// level is one open drop-down panel.
type level struct {
	tree   *menu.Tree
	cursor int
}

// Model is the bubbletea model for a menu bar.
type Model struct {
	bar      *menu.Tree
	host     any
	cursor   int
	open     []level
	keys     keyMap
	styles   Styles
	help     help.Model
	showHelp bool
	width    int
}

// New creates a menu bar over the given tree. host is handed to leaf
// callbacks when their entries are activated.
func New(bar *menu.Tree, host any) Model {
	return Model{
		bar:      bar,
		host:     host,
		cursor:   nextSelectable(bar, -1, 1),
		keys:     defaultKeys,
		styles:   DefaultStyles(),
		help:     help.New(),
		showHelp: true,
	}
}

// SetStyles overrides the default styles.
func (m *Model) SetStyles(styles Styles) {
	m.styles = styles
}

// SetShowHelp toggles the help line under the panels.
func (m *Model) SetShowHelp(show bool) {
	m.showHelp = show
}

// Open reports whether any drop-down panel is open.
func (m Model) Open() bool {
	return len(m.open) > 0
}

// Cursor returns the selected position in the bar, or -1 when the bar has
// no selectable entries.
func (m Model) Cursor() int {
	return m.cursor
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if len(m.open) == 0 {
			return m.updateBar(msg)
		}
		return m.updatePanel(msg)
	}

	return m, nil
}

func (m Model) updateBar(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cursor = nextSelectable(m.bar, m.cursor, -1)

	case key.Matches(msg, m.keys.Right):
		m.cursor = nextSelectable(m.bar, m.cursor, 1)

	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Down):
		return m.enter(m.bar.Get(m.cursor))
	}

	return m, nil
}

func (m Model) updatePanel(msg tea.KeyMsg) (Model, tea.Cmd) {
	top := &m.open[len(m.open)-1]

	switch {
	case key.Matches(msg, m.keys.Up):
		top.cursor = nextSelectable(top.tree, top.cursor, -1)

	case key.Matches(msg, m.keys.Down):
		top.cursor = nextSelectable(top.tree, top.cursor, 1)

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Left):
		m.open = m.open[:len(m.open)-1]

	case key.Matches(msg, m.keys.Right):
		// Only descends; closing levels is left/esc.
		if item := top.tree.Get(top.cursor); item != nil && item.IsSubtree() {
			return m.enter(item)
		}

	case key.Matches(msg, m.keys.Select):
		return m.enter(top.tree.Get(top.cursor))
	}

	return m, nil
}

// enter descends into a subtree or activates a leaf. Disabled entries and
// delimiters are ignored.
func (m Model) enter(item *menu.Item) (Model, tea.Cmd) {
	if item == nil || !item.IsEnabled() {
		return m, nil
	}

	if sub, ok := item.Subtree(); ok {
		m.open = append(m.open, level{tree: sub, cursor: nextSelectable(sub, -1, 1)})
		return m, nil
	}

	if cb := item.Callback(); cb != nil {
		cb(m.host)
	}
	m.open = nil
	label := item.Label()
	return m, func() tea.Msg {
		return ActivatedMsg{Label: label}
	}
}

// nextSelectable returns the position of the next enabled entry starting
// after from in the given direction, wrapping around. Delimiters and
// disabled entries are skipped. Returns -1 when the tree has no enabled
// entry.
func nextSelectable(t *menu.Tree, from, step int) int {
	n := t.Len()
	if n == 0 {
		return -1
	}
	for offset := 1; offset <= n; offset++ {
		i := ((from+step*offset)%n + n) % n
		if t.Get(i).IsEnabled() {
			return i
		}
	}
	return -1
}
