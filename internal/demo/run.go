package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"menukit.dev/menukit/internal/config"
	"menukit.dev/menukit/internal/errors"
	"menukit.dev/menukit/internal/tui"
)

// Run starts a demo session in the alternate screen and blocks until the
// user leaves it. Returns ErrSessionCanceled when the session was quit with
// ctrl+c or q rather than through a menu entry.
func Run(d Demo, cfg *config.Config, splog *tui.Splog) error {
	if err := tui.CheckInteractive(); err != nil {
		return err
	}

	// Console output would tear the alternate screen.
	splog.SetQuiet(true)
	defer splog.SetQuiet(false)

	splog.Debug("starting demo %s", d.Name)

	p := tea.NewProgram(d.NewModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run demo %s: %w", d.Name, err)
	}

	if session, ok := final.(*Session); ok && session.Canceled() {
		return errors.ErrSessionCanceled
	}

	return nil
}
