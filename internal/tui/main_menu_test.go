package tui

import "testing"

func TestMainMenuCursorSkipsDisabledItems(t *testing.T) {
	a := newTestApp(t)

	if a.mainSelected != 0 {
		t.Fatalf("expected cursor on first item, got %d", a.mainSelected)
	}

	// Down past Build lands on Exit, skipping disabled Prune.
	press(a, keyDown, keyDown, keyDown)
	if got := mainItems[a.mainSelected]; got != mainExit {
		t.Fatalf("expected Exit, got %v", got)
	}

	// Down from the last item wraps to the top.
	press(a, keyDown)
	if got := mainItems[a.mainSelected]; got != mainTasteProfiles {
		t.Fatalf("expected wrap to Taste Profiles, got %v", got)
	}

	// Up from the top wraps to Exit; up again skips Prune to Build.
	press(a, keyUp)
	if got := mainItems[a.mainSelected]; got != mainExit {
		t.Fatalf("expected wrap to Exit, got %v", got)
	}
	press(a, keyUp)
	if got := mainItems[a.mainSelected]; got != mainBuild {
		t.Fatalf("expected Build, got %v", got)
	}

	// No sequence of moves may rest on a disabled item.
	for i := 0; i < 2*len(mainItems); i++ {
		press(a, keyDown)
		if mainItems[a.mainSelected].disabled() {
			t.Fatalf("cursor rested on disabled item after %d moves", i+1)
		}
	}
	for i := 0; i < 2*len(mainItems); i++ {
		press(a, keyUp)
		if mainItems[a.mainSelected].disabled() {
			t.Fatalf("cursor rested on disabled item after %d up moves", i+1)
		}
	}
}

func TestMainMenuActivation(t *testing.T) {
	a := newTestApp(t)

	press(a, keyEnter)
	if a.screen != screenTaste || a.tasteMode != tasteBrowse {
		t.Fatalf("expected taste browse, got screen=%v mode=%v", a.screen, a.tasteMode)
	}
	press(a, keyEsc)
	if a.screen != screenMain {
		t.Fatalf("expected main screen, got %v", a.screen)
	}

	press(a, keyDown, keyEnter)
	if a.screen != screenDisplay || a.displayMode != displayBrowse {
		t.Fatalf("expected display browse, got screen=%v mode=%v", a.screen, a.displayMode)
	}
	press(a, keyEsc)

	// Exit sets the quit flag. Cursor is on Display Profiles; two ups wrap
	// to Exit.
	press(a, keyUp, keyUp, keyEnter)
	if !a.shouldQuit {
		t.Fatalf("expected quit after activating Exit")
	}
}

func TestMainMenuQuitKey(t *testing.T) {
	a := newTestApp(t)
	press(a, runes("q"))
	if !a.shouldQuit {
		t.Fatalf("expected quit on q")
	}
}
