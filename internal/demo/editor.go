package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"menukit.dev/menukit/internal/config"
	"menukit.dev/menukit/internal/menu"
)

func init() {
	Register(Demo{
		Name:        "editor",
		Description: "A text-editor style menu bar: nested submenus, delimiters, disabled entries, and a Theme submenu shared by View and Preferences",
		NewModel:    newEditorModel,
	})
}

func newEditorModel(cfg *config.Config) tea.Model {
	say := func(format string, args ...any) menu.Callback {
		return func(host any) {
			asApp(host).SetStatus(fmt.Sprintf(format, args...))
		}
	}

	recent := menu.New().
		Leaf("notes.txt", say("Opened notes.txt")).
		Leaf("journal.md", say("Opened journal.md")).
		Leaf("todo.md", say("Opened todo.md"))

	file := menu.New().
		Leaf("New", say("Created an empty buffer")).
		Leaf("Open…", say("Open: no file picker in this demo")).
		Subtree("Open Recent", recent).
		Delimiter().
		Item(menu.NewLeaf("Save", say("unreachable")).Disabled()).
		Delimiter().
		Leaf("Quit", func(host any) {
			asApp(host).SetStatus("Bye.")
			asApp(host).Quit()
		})

	pasteSpecial := menu.New().
		Leaf("Plain Text", say("Pasted as plain text")).
		Leaf("Markdown", say("Pasted as markdown"))

	edit := menu.New().
		Leaf("Cut", say("Cut selection")).
		Leaf("Copy", say("Copied selection")).
		Leaf("Paste", say("Pasted")).
		Delimiter().
		Subtree("Paste Special", pasteSpecial)

	// One Theme submenu attached under two parents. The clones share
	// content until either menu mutates it.
	theme := menu.NewSubtree("Theme", menu.New().
		Leaf("Dark", say("Theme: dark")).
		Leaf("Light", say("Theme: light")).
		Leaf("Solarized", say("Theme: solarized")))

	view := menu.New().
		Leaf("Zoom In", say("Zoomed in")).
		Leaf("Zoom Out", say("Zoomed out")).
		Delimiter().
		Item(theme.Clone())

	preferences := menu.New().
		Item(theme.Clone()).
		Leaf("Keybindings…", say("Keybindings: not in this demo"))

	bar := menu.New().
		Subtree("File", file).
		Subtree("Edit", edit).
		Subtree("View", view).
		Delimiter().
		Subtree("Preferences", preferences)

	return NewSession("menukit · editor demo", bar, cfg)
}
