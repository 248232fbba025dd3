package menubar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"menukit.dev/menukit/internal/menu"
)

// SubtreeMarker is appended after subtree labels in drop-down panels.
const SubtreeMarker = "▸"

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewBar())
	b.WriteString("\n")

	for depth, lvl := range m.open {
		b.WriteString(m.viewPanel(lvl, depth))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	}

	return b.String()
}

func (m Model) viewBar() string {
	parts := make([]string, 0, m.bar.Len())
	for i := 0; i < m.bar.Len(); i++ {
		item := m.bar.Get(i)
		parts = append(parts, m.renderEntry(item, i == m.cursor))
	}
	return m.styles.Bar.Render(strings.Join(parts, ""))
}

func (m Model) viewPanel(lvl level, depth int) string {
	rows := make([]string, 0, lvl.tree.Len())
	for i := 0; i < lvl.tree.Len(); i++ {
		item := lvl.tree.Get(i)

		marker := "  "
		if i == lvl.cursor {
			marker = SubtreeMarker + " "
		}

		row := marker + item.Label()
		if item.IsSubtree() {
			row += " " + SubtreeMarker
		}

		switch {
		case i == lvl.cursor:
			row = m.styles.Selected.Render(row)
		case !item.IsEnabled():
			row = m.styles.Disabled.Render(row)
		default:
			row = m.styles.BarItem.Render(row)
		}
		rows = append(rows, row)
	}

	panel := m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	// Nested panels step right so the open path stays readable.
	indent := strings.Repeat("  ", depth)
	lines := strings.Split(panel, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

// renderEntry renders one top-level bar entry. Labels are shown verbatim,
// delimiters included.
func (m Model) renderEntry(item *menu.Item, selected bool) string {
	label := item.Label()
	switch {
	case item.IsDelimiter():
		return m.styles.Delimiter.Render(label)
	case selected && len(m.open) == 0:
		return m.styles.Selected.Render(label)
	case selected:
		return m.styles.Selected.Underline(true).Render(label)
	case !item.IsEnabled():
		return m.styles.Disabled.Render(label)
	default:
		return m.styles.BarItem.Render(label)
	}
}
