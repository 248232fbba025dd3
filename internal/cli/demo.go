package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"menukit.dev/menukit/internal/config"
	"menukit.dev/menukit/internal/demo"
	"menukit.dev/menukit/internal/errors"
	"menukit.dev/menukit/internal/tui"
)

// newDemoCmd creates the demo command
func newDemoCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "demo [name]",
		Short: "Run one of the bundled menu bar demos",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultPath())
			if err != nil {
				return err
			}

			logFile := cfg.GetLogFile()
			if logFile == "" {
				logFile = tui.GetLogFilePath()
			}
			splog, err := tui.NewSplogWithConfig(logFile)
			if err != nil {
				// Log file problems shouldn't block the demo.
				splog = tui.NewSplog()
				splog.Debug("file logging disabled: %v", err)
			}
			defer func() { _ = splog.Close() }()

			if list {
				for _, d := range demo.All() {
					splog.Info("%-10s %s", d.Name, d.Description)
				}
				return nil
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			} else {
				name, err = pickDemo()
				if stderrors.Is(err, errors.ErrSessionCanceled) {
					splog.Info("Canceled.")
					return nil
				}
				if err != nil {
					return err
				}
			}

			d, err := demo.Get(name)
			if err != nil {
				return err
			}

			err = demo.Run(d, cfg, splog)
			switch {
			case stderrors.Is(err, errors.ErrSessionCanceled):
				splog.Info("Canceled.")
				return nil
			case err != nil:
				return err
			}

			splog.Info("Demo %s finished.", d.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the available demos instead of running one")

	return cmd
}

// pickDemo prompts for a demo when none was named on the command line
func pickDemo() (string, error) {
	if err := tui.CheckInteractive(); err != nil {
		return "", fmt.Errorf("no demo named and %w; try --list", err)
	}

	var name string
	prompt := &survey.Select{
		Message: "Choose a demo",
		Options: demo.Names(),
	}
	if err := survey.AskOne(prompt, &name); err != nil {
		return "", errors.ErrSessionCanceled
	}

	return name, nil
}
