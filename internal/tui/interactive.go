package tui

import (
	"os"

	"github.com/mattn/go-isatty"

	"menukit.dev/menukit/internal/errors"
)

// CheckInteractive returns ErrNotInteractive unless both stdin and stdout
// are terminals. MENUKIT_TEST_NO_INTERACTIVE forces the error, so tests can
// exercise non-interactive code paths.
func CheckInteractive() error {
	if os.Getenv("MENUKIT_TEST_NO_INTERACTIVE") != "" {
		return errors.ErrNotInteractive
	}

	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return errors.ErrNotInteractive
	}

	return nil
}
