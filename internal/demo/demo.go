// Package demo holds the menukit showcase scenarios: small host
// applications whose menu bars exercise the menu model end to end.
package demo

import (
	tea "github.com/charmbracelet/bubbletea"

	"menukit.dev/menukit/internal/config"
	"menukit.dev/menukit/internal/errors"
)

// Demo is one runnable showcase scenario
type Demo struct {
	Name        string
	Description string
	NewModel    func(cfg *config.Config) tea.Model
}

// demos is the registry of all scenarios
var demos = []Demo{}

// Register registers a new demo scenario
func Register(d Demo) {
	demos = append(demos, d)
}

// All returns every registered demo, in registration order
func All() []Demo {
	return demos
}

// Names returns the names of every registered demo
func Names() []string {
	names := make([]string, 0, len(demos))
	for _, d := range demos {
		names = append(names, d.Name)
	}
	return names
}

// Get returns the demo with the given name
func Get(name string) (Demo, error) {
	for _, d := range demos {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, errors.NewDemoNotFoundError(name, Names())
}
