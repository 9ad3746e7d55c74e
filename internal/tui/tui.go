package tui

import (
	"context"

	"artgg/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive UI over an already-opened store and blocks until
// the user quits. It returns a non-nil error if the session ended because of
// a storage failure.
func Run(ctx context.Context, st *store.Store) error {
	applyColorProfilePreference()

	a, err := newApp(ctx, st)
	if err != nil {
		return err
	}
	out, err := tea.NewProgram(appModel{app: a}, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	return out.(appModel).app.Err()
}

// appModel adapts App to bubbletea: Update forwards key events into the
// state machine and View renders from its public state.
type appModel struct {
	app *App
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.app.width = msg.Width
		m.app.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.app.handleKey(msg)
		if m.app.shouldQuit {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m appModel) View() string { return m.app.view() }
