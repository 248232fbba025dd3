package demo

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"menukit.dev/menukit/internal/config"
	"menukit.dev/menukit/internal/menu"
)

func init() {
	Register(Demo{
		Name:        "launcher",
		Description: "A flat command launcher with a counter entry that shows callbacks being invoked repeatedly",
		NewModel:    newLauncherModel,
	})
}

func newLauncherModel(cfg *config.Config) tea.Model {
	count := 0

	actions := menu.New().
		Leaf("Say Hello", func(host any) {
			asApp(host).SetStatus("Hello!")
		}).
		Leaf("Count", func(host any) {
			count++
			asApp(host).SetStatus(fmt.Sprintf("Counted %d times", count))
		}).
		Delimiter().
		Leaf("Reset Counter", func(host any) {
			count = 0
			asApp(host).SetStatus("Counter reset")
		})

	session := menu.New().
		Leaf("Quit", func(host any) {
			asApp(host).Quit()
		})

	bar := menu.New().
		Subtree("Actions", actions).
		Subtree("Session", session)

	return NewSession("menukit · launcher demo", bar, cfg)
}
