package tui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

type buildStep int

const (
	buildPickTaste buildStep = iota
	buildPickDisplay
	buildPickOutputDir
)

// enterBuild resets the wizard: picker indices back to 0, first step active,
// output buffer re-seeded with the default path. Any prior in-progress
// wizard state is discarded.
func (a *App) enterBuild() {
	a.buildStep = buildPickTaste
	a.buildTasteIdx = 0
	a.buildDisplayIdx = 0
	a.buildOutput = newEditInput(defaultOutputDir())
	a.screen = screenBuild
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "Pictures", "artgg")
}

func (a *App) handleBuildKey(msg tea.KeyMsg) {
	switch a.buildStep {
	case buildPickTaste:
		switch msg.String() {
		case "up":
			if len(a.tasteProfiles) > 0 {
				a.buildTasteIdx = clamp(a.buildTasteIdx-1, len(a.tasteProfiles))
			}
		case "down":
			if len(a.tasteProfiles) > 0 {
				a.buildTasteIdx = clamp(a.buildTasteIdx+1, len(a.tasteProfiles))
			}
		case "enter":
			if len(a.tasteProfiles) > 0 {
				a.buildStep = buildPickDisplay
			}
		case "esc":
			a.screen = screenMain
		}

	case buildPickDisplay:
		switch msg.String() {
		case "up":
			if len(a.displayProfiles) > 0 {
				a.buildDisplayIdx = clamp(a.buildDisplayIdx-1, len(a.displayProfiles))
			}
		case "down":
			if len(a.displayProfiles) > 0 {
				a.buildDisplayIdx = clamp(a.buildDisplayIdx+1, len(a.displayProfiles))
			}
		case "enter":
			if len(a.displayProfiles) > 0 {
				a.buildStep = buildPickOutputDir
			}
		case "esc":
			a.buildStep = buildPickTaste
		}

	case buildPickOutputDir:
		switch msg.String() {
		case "enter":
			// The actual build runner is not wired in yet; finishing the
			// wizard just returns to the menu.
			a.screen = screenMain
		case "esc":
			a.buildStep = buildPickDisplay
		default:
			a.buildOutput, _ = a.buildOutput.Update(msg)
		}
	}
}
