// Package tui implements the interactive artgg terminal UI: the screen and
// mode state machine, and the lipgloss rendering of it.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"artgg/internal/model"
	"artgg/internal/store"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMain screen = iota
	screenTaste
	screenDisplay
	screenBuild
)

type mainItem int

const (
	mainTasteProfiles mainItem = iota
	mainDisplayProfiles
	mainBuild
	mainPrune
	mainExit
)

var mainItems = []mainItem{
	mainTasteProfiles,
	mainDisplayProfiles,
	mainBuild,
	mainPrune,
	mainExit,
}

func (i mainItem) label() string {
	switch i {
	case mainTasteProfiles:
		return "Taste Profiles"
	case mainDisplayProfiles:
		return "Display Profiles"
	case mainBuild:
		return "Build"
	case mainPrune:
		return "Prune"
	default:
		return "Exit"
	}
}

func (i mainItem) description() string {
	switch i {
	case mainTasteProfiles:
		return "Curate art-selection preferences: date ranges, public-domain filtering and keywords."
	case mainDisplayProfiles:
		return "Curate rendering preferences: wallpaper color, orientation and aspect ratio."
	case mainBuild:
		return "Pick a taste profile, a display profile and an output directory for a wallpaper build."
	case mainPrune:
		return "Remove old images based on retention limits."
	default:
		return "Exit artgg."
	}
}

func (i mainItem) disabled() bool {
	// Pruning is not implemented yet.
	return i == mainPrune
}

// App owns all interactive state: the current screen, each screen's mode,
// selection cursors, drafts, and the in-memory profile lists. It consumes one
// key event at a time via handleKey; the store is its system of record.
type App struct {
	ctx context.Context
	st  *store.Store

	// Terminal size, maintained by the outer bubbletea model and read only
	// by the view functions.
	width  int
	height int

	screen     screen
	shouldQuit bool
	// fatalErr records an unrecoverable storage error; once set, the app
	// stops consuming input and the program exits with it.
	fatalErr error

	mainSelected int

	tasteProfiles []model.TasteProfile
	tasteSelected int
	tasteMode     tasteMode
	tasteField    int
	tasteDraft    model.TasteDraft
	tasteInput    textinput.Model

	keywords      []model.Keyword
	keywordCursor int

	displayProfiles []model.DisplayProfile
	displaySelected int
	displayMode     displayMode
	displayField    int
	displayDraft    model.DisplayDraft
	displayInput    textinput.Model

	buildStep       buildStep
	buildTasteIdx   int
	buildDisplayIdx int
	buildOutput     textinput.Model
}

func newApp(ctx context.Context, st *store.Store) (*App, error) {
	a := &App{ctx: ctx, st: st, screen: screenMain}

	var err error
	if a.tasteProfiles, err = st.TasteProfiles(ctx); err != nil {
		return nil, err
	}
	if a.displayProfiles, err = st.DisplayProfiles(ctx); err != nil {
		return nil, err
	}
	if a.keywords, err = st.KeywordCatalog(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// handleKey is the single entry point of the state machine. It runs to
// completion before the next event is delivered; every storage write it
// issues is synchronous.
func (a *App) handleKey(msg tea.KeyMsg) {
	if a.fatalErr != nil {
		return
	}
	if msg.String() == "ctrl+c" {
		a.shouldQuit = true
		return
	}
	switch a.screen {
	case screenMain:
		a.handleMainKey(msg)
	case screenTaste:
		a.handleTasteKey(msg)
	case screenDisplay:
		a.handleDisplayKey(msg)
	case screenBuild:
		a.handleBuildKey(msg)
	}
}

func (a *App) handleMainKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		a.moveMain(-1)
	case "down":
		a.moveMain(1)
	case "q":
		a.shouldQuit = true
	case "enter":
		switch mainItems[a.mainSelected] {
		case mainTasteProfiles:
			a.screen = screenTaste
			a.tasteMode = tasteBrowse
		case mainDisplayProfiles:
			a.screen = screenDisplay
			a.displayMode = displayBrowse
		case mainBuild:
			a.enterBuild()
		case mainExit:
			a.shouldQuit = true
		}
	}
}

// moveMain steps the main-menu cursor cyclically, skipping disabled items so
// the cursor never rests on one.
func (a *App) moveMain(delta int) {
	n := len(mainItems)
	i := a.mainSelected
	for range mainItems {
		i = (i + delta + n) % n
		if !mainItems[i].disabled() {
			a.mainSelected = i
			return
		}
	}
}

// fail records a storage error and quits. Storage errors are fatal:
// no recovery, no in-UI error surface.
func (a *App) fail(err error) {
	a.fatalErr = err
	a.shouldQuit = true
}

// Err returns the fatal storage error, if any.
func (a *App) Err() error { return a.fatalErr }

// newEditInput builds a focused single-line input seeded with value. The
// cursor is static: the state machine does not schedule blink commands.
func newEditInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	ti.Focus()
	ti.CursorEnd()
	return ti
}

// newYearInput is newEditInput restricted to signed-year buffers: digits,
// with a single leading minus for BCE years.
func newYearInput(value string) textinput.Model {
	ti := newEditInput(value)
	ti.Validate = validateYear
	return ti
}

func validateYear(s string) error {
	for i, r := range s {
		if r == '-' && i == 0 {
			continue
		}
		if !unicode.IsDigit(r) {
			return fmt.Errorf("not a year: %q", s)
		}
	}
	return nil
}

// parseYear turns an edit buffer into an optional year. An empty buffer is
// unset; a buffer that fails to parse (e.g. a bare "-") silently falls back
// to unset as well.
func parseYear(buf string) *int64 {
	buf = strings.TrimSpace(buf)
	if buf == "" {
		return nil
	}
	n, err := strconv.ParseInt(buf, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func yearBuffer(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
