package tui

import (
	"context"
	"testing"

	"artgg/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

var testKeywords = []string{
	"portraits", "landscapes", "still life", "flowers", "animals", "birds",
	"mythology", "religion", "architecture", "seascapes", "winter", "night",
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if _, err := st.SeedKeywords(ctx, testKeywords); err != nil {
		t.Fatalf("seed keywords: %v", err)
	}
	a, err := newApp(ctx, st)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

var (
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc       = tea.KeyMsg{Type: tea.KeyEsc}
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, msgs ...tea.KeyMsg) {
	for _, m := range msgs {
		a.handleKey(m)
	}
}

// typeText delivers s one rune at a time, the way a terminal would.
func typeText(a *App, s string) {
	for _, r := range s {
		if r == ' ' {
			a.handleKey(keySpace)
			continue
		}
		a.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// createTasteProfile drives the creation flow with all domain fields left at
// their defaults.
func createTasteProfile(t *testing.T, a *App, name string) {
	t.Helper()
	press(a, runes("a"))
	if a.tasteMode != tasteCreating {
		t.Fatalf("expected creating mode, got %v", a.tasteMode)
	}
	press(a, keyDown, keyDown, keyDown, keyDown, keyEnter)
	if a.tasteMode != tasteCreatingName {
		t.Fatalf("expected naming mode, got %v", a.tasteMode)
	}
	typeText(a, name)
	press(a, keyEnter)
	if a.tasteMode != tasteBrowse {
		t.Fatalf("expected browse after commit, got %v", a.tasteMode)
	}
}

func createDisplayProfile(t *testing.T, a *App, name string) {
	t.Helper()
	press(a, runes("a"))
	if a.displayMode != displayCreating {
		t.Fatalf("expected creating mode, got %v", a.displayMode)
	}
	press(a, keyDown, keyDown, keyDown, keyDown, keyEnter)
	if a.displayMode != displayCreatingName {
		t.Fatalf("expected naming mode, got %v", a.displayMode)
	}
	// Clear the suggested default before typing the requested name.
	for i := 0; i < 64 && a.displayInput.Value() != ""; i++ {
		press(a, keyBackspace)
	}
	typeText(a, name)
	press(a, keyEnter)
	if a.displayMode != displayBrowse {
		t.Fatalf("expected browse after commit, got %v", a.displayMode)
	}
}
