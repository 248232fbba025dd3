package demo

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"menukit.dev/menukit/internal/config"
	"menukit.dev/menukit/internal/menu"
	"menukit.dev/menukit/internal/menubar"
)

// App is the host handle passed to menu callbacks. Callbacks receive it as
// the opaque host argument and type-assert it back.
type App struct {
	status string
	quit   bool
}

// SetStatus replaces the status line shown under the menu bar.
func (a *App) SetStatus(status string) {
	a.status = status
}

// Status returns the current status line.
func (a *App) Status() string {
	return a.status
}

// Quit asks the session to end after the current callback returns.
func (a *App) Quit() {
	a.quit = true
}

// asApp recovers the *App handle inside a menu callback.
func asApp(host any) *App {
	return host.(*App)
}

// sessionStyles holds the chrome around the menu bar
type sessionStyles struct {
	status lipgloss.Style
	title  lipgloss.Style
}

// Session is the bubbletea model wrapping a menu bar and its host app.
type Session struct {
	title    string
	bar      menubar.Model
	app      *App
	styles   sessionStyles
	canceled bool
	width    int
	height   int
}

// NewSession builds a demo session over the given menu bar tree.
func NewSession(title string, bar *menu.Tree, cfg *config.Config) *Session {
	app := &App{status: "Ready."}

	accent := lipgloss.Color(cfg.GetAccentColor())
	dim := lipgloss.Color(cfg.GetDimColor())

	mb := menubar.New(bar, app)
	mb.SetStyles(menubar.NewStyles(accent, dim))
	mb.SetShowHelp(cfg.GetShowHelp())

	return &Session{
		title: title,
		bar:   mb,
		app:   app,
		styles: sessionStyles{
			status: lipgloss.NewStyle().Foreground(dim),
			title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		},
	}
}

// Canceled reports whether the user quit the session without activating an
// entry that ended it.
func (s *Session) Canceled() bool {
	return s.canceled
}

// Init implements tea.Model.
func (s *Session) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && !s.bar.Open()) {
			s.canceled = true
			return s, tea.Quit
		}

	case menubar.ActivatedMsg:
		if s.app.quit {
			return s, tea.Quit
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.bar, cmd = s.bar.Update(msg)
	return s, cmd
}

// View implements tea.Model.
func (s *Session) View() string {
	return s.styles.title.Render(s.title) + "\n\n" +
		s.bar.View() + "\n" +
		s.styles.status.Render(s.app.status) + "\n"
}
