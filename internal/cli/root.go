// Package cli wires the menukit commands together with cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "menukit",
		Short: "Menukit is a hierarchical menu toolkit for terminal applications",
		Long: `Menukit is a hierarchical menu toolkit for terminal applications.

It provides an ordered tree of actionable entries, nested submenus, and
delimiters, plus a menu bar component that renders and drives the tree.
The bundled demos show the toolkit in action.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Add subcommands
	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}
