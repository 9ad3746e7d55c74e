package tui

import (
	"testing"

	"artgg/internal/model"
)

func enterTasteScreen(t *testing.T, a *App) {
	t.Helper()
	press(a, keyEnter) // main menu starts on Taste Profiles
	if a.screen != screenTaste {
		t.Fatalf("expected taste screen, got %v", a.screen)
	}
}

func TestDateEditingCommitAndUnset(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)
	createTasteProfile(t, a, "Renaissance")

	// Open the detail view and edit Date Start.
	press(a, keyEnter)
	if a.tasteMode != tasteDetail || a.tasteField != 0 {
		t.Fatalf("expected detail with field 0, got mode=%v field=%d", a.tasteMode, a.tasteField)
	}
	press(a, runes("e"))
	if a.tasteMode != tasteEditingDate {
		t.Fatalf("expected date editing, got %v", a.tasteMode)
	}
	typeText(a, "1503")
	press(a, keyEnter)
	if a.tasteMode != tasteDetail {
		t.Fatalf("expected detail after commit, got %v", a.tasteMode)
	}
	p := a.tasteProfiles[0]
	if p.DateStart == nil || *p.DateStart != 1503 {
		t.Fatalf("expected date start 1503, got %v", p.DateStart)
	}

	// Committing an empty buffer unsets the field.
	press(a, keyEnter)
	for i := 0; i < 8 && a.tasteInput.Value() != ""; i++ {
		press(a, keyBackspace)
	}
	press(a, keyEnter)
	if a.tasteProfiles[0].DateStart != nil {
		t.Fatalf("expected unset date start, got %v", *a.tasteProfiles[0].DateStart)
	}

	// A bare "-" fails to parse and also commits as unset.
	press(a, keyEnter)
	typeText(a, "-")
	press(a, keyEnter)
	if a.tasteProfiles[0].DateStart != nil {
		t.Fatalf("expected unset date start after bare minus, got %v", *a.tasteProfiles[0].DateStart)
	}

	// Negative years parse.
	press(a, keyEnter)
	typeText(a, "-450")
	press(a, keyEnter)
	if p := a.tasteProfiles[0]; p.DateStart == nil || *p.DateStart != -450 {
		t.Fatalf("expected -450, got %v", p.DateStart)
	}

	// Edits are persisted: a fresh load sees the committed value.
	stored, err := a.st.TasteProfiles(a.ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored[0].DateStart == nil || *stored[0].DateStart != -450 {
		t.Fatalf("expected persisted -450, got %v", stored[0].DateStart)
	}
}

func TestDateEditingEscDiscardsBuffer(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)
	createTasteProfile(t, a, "Rococo")

	press(a, keyEnter, runes("e"))
	typeText(a, "1720")
	press(a, keyEsc)
	if a.tasteMode != tasteDetail {
		t.Fatalf("expected detail after esc, got %v", a.tasteMode)
	}
	if a.tasteProfiles[0].DateStart != nil {
		t.Fatalf("expected untouched date start, got %v", *a.tasteProfiles[0].DateStart)
	}
}

func TestPublicDomainToggleRoundTrips(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)
	createTasteProfile(t, a, "Impressionism")

	press(a, keyEnter, keyDown, keyDown) // detail, cursor on Public Domain
	if a.tasteField != tasteFieldPublic {
		t.Fatalf("expected public-domain field, got %d", a.tasteField)
	}
	press(a, keyEnter)
	if !a.tasteProfiles[0].IsPublicDomain {
		t.Fatalf("expected toggle to true")
	}
	// Space is the shorthand toggle; two flips restore the original value.
	press(a, keySpace)
	if a.tasteProfiles[0].IsPublicDomain {
		t.Fatalf("expected toggle back to false")
	}

	stored, err := a.st.TasteProfiles(a.ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored[0].IsPublicDomain {
		t.Fatalf("expected persisted false")
	}
}

func TestKeywordSelectionCap(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)
	createTasteProfile(t, a, "Eclectic")

	press(a, keyEnter, keyDown, keyDown, keyDown) // detail, cursor on Keywords
	press(a, keyEnter)
	if a.tasteMode != tasteSelectingKeywords || a.keywordCursor != 0 {
		t.Fatalf("expected keyword picker at top, got mode=%v cursor=%d", a.tasteMode, a.keywordCursor)
	}

	// Toggle the first 11 catalog entries on; the 11th is refused at the cap.
	for i := 0; i < 11; i++ {
		press(a, keySpace)
		press(a, keyDown)
	}
	p := a.tasteProfiles[0]
	if len(p.Keywords) != model.MaxProfileKeywords {
		t.Fatalf("expected %d keywords, got %d", model.MaxProfileKeywords, len(p.Keywords))
	}

	// Toggling one off then re-adding succeeds.
	for a.keywordCursor > 0 {
		press(a, keyUp)
	}
	press(a, keySpace)
	if len(a.tasteProfiles[0].Keywords) != model.MaxProfileKeywords-1 {
		t.Fatalf("expected %d after removal, got %d", model.MaxProfileKeywords-1, len(a.tasteProfiles[0].Keywords))
	}
	press(a, keySpace)
	if len(a.tasteProfiles[0].Keywords) != model.MaxProfileKeywords {
		t.Fatalf("expected re-add to succeed, got %d", len(a.tasteProfiles[0].Keywords))
	}

	// Each toggle persisted individually.
	stored, err := a.st.TasteProfiles(a.ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(stored[0].Keywords) != model.MaxProfileKeywords {
		t.Fatalf("expected %d persisted keywords, got %d", model.MaxProfileKeywords, len(stored[0].Keywords))
	}
}

func TestKeywordCursorClampsAtEnds(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)
	createTasteProfile(t, a, "Edges")

	press(a, keyEnter, keyDown, keyDown, keyDown, keyEnter)
	press(a, keyUp, keyUp)
	if a.keywordCursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", a.keywordCursor)
	}
	for i := 0; i < len(a.keywords)+5; i++ {
		press(a, keyDown)
	}
	if a.keywordCursor != len(a.keywords)-1 {
		t.Fatalf("expected cursor clamped at %d, got %d", len(a.keywords)-1, a.keywordCursor)
	}
}

func TestDeleteClampsSelection(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)
	createTasteProfile(t, a, "First")
	createTasteProfile(t, a, "Second")
	createTasteProfile(t, a, "Third")

	// Committing selects the new profile, so the cursor sits on the last
	// entry. Deleting it must clamp the selection to the new last element.
	if a.tasteSelected != 2 {
		t.Fatalf("expected selection on last profile, got %d", a.tasteSelected)
	}
	press(a, runes("d"))
	if len(a.tasteProfiles) != 2 || a.tasteSelected != 1 {
		t.Fatalf("expected 2 profiles with selection 1, got %d/%d", len(a.tasteProfiles), a.tasteSelected)
	}
	press(a, runes("d"), runes("d"))
	if len(a.tasteProfiles) != 0 {
		t.Fatalf("expected empty list, got %d", len(a.tasteProfiles))
	}
	// Delete on an empty list is a structural no-op.
	press(a, runes("d"))
	if len(a.tasteProfiles) != 0 || a.fatalErr != nil {
		t.Fatalf("expected silent no-op on empty delete")
	}
}

func TestBrowseSelectionClampsAndEmptyEnterIsNoop(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)

	press(a, keyEnter)
	if a.tasteMode != tasteBrowse {
		t.Fatalf("enter on empty list must not open detail, got %v", a.tasteMode)
	}

	createTasteProfile(t, a, "A")
	createTasteProfile(t, a, "B")
	press(a, keyDown, keyDown, keyDown)
	if a.tasteSelected != 1 {
		t.Fatalf("expected clamp at 1, got %d", a.tasteSelected)
	}
	press(a, keyUp, keyUp, keyUp)
	if a.tasteSelected != 0 {
		t.Fatalf("expected clamp at 0, got %d", a.tasteSelected)
	}
}

func TestCreatingNameEscPreservesTypedText(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)

	press(a, runes("a"))
	press(a, keyDown, keyDown, keyDown, keyDown, keyEnter)
	typeText(a, "My Profile")
	press(a, keyEsc)

	if a.tasteMode != tasteCreating {
		t.Fatalf("expected creating mode, got %v", a.tasteMode)
	}
	if a.tasteDraft.Name != "My Profile" {
		t.Fatalf("expected name preserved in draft, got %q", a.tasteDraft.Name)
	}
	if a.tasteDraft.CurrentField != model.DraftFieldName {
		t.Fatalf("expected field cursor on name, got %d", a.tasteDraft.CurrentField)
	}

	// Re-entering the naming step shows the preserved text.
	press(a, keyEnter)
	if a.tasteMode != tasteCreatingName || a.tasteInput.Value() != "My Profile" {
		t.Fatalf("expected buffer %q, got %q", "My Profile", a.tasteInput.Value())
	}

	// Esc from the form itself abandons the draft entirely.
	press(a, keyEsc, keyEsc)
	if a.tasteMode != tasteBrowse || len(a.tasteProfiles) != 0 {
		t.Fatalf("expected abandoned draft, mode=%v profiles=%d", a.tasteMode, len(a.tasteProfiles))
	}
}

func TestCreatingNameEmptyEnterDoesNotCommit(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)

	press(a, runes("a"), keyDown, keyDown, keyDown, keyDown, keyEnter)
	press(a, keyEnter)
	if a.tasteMode != tasteCreatingName || len(a.tasteProfiles) != 0 {
		t.Fatalf("empty name must not commit")
	}
}

func TestCreateTasteProfileEndToEnd(t *testing.T) {
	a := newTestApp(t)
	enterTasteScreen(t, a)

	press(a, runes("a"))

	// Date start 1600.
	press(a, keyEnter)
	if a.tasteMode != tasteCreatingEditDate {
		t.Fatalf("expected draft date editor, got %v", a.tasteMode)
	}
	typeText(a, "1600")
	press(a, keyEnter)

	// Date end 1750.
	press(a, keyDown, keyEnter)
	typeText(a, "1750")
	press(a, keyEnter)

	// Public domain on.
	press(a, keyDown, keyEnter)
	if !a.tasteDraft.IsPublicDomain {
		t.Fatalf("expected draft public-domain toggle")
	}

	// Two keywords; nothing is persisted while drafting.
	press(a, keyDown, keyEnter)
	if a.tasteMode != tasteCreatingSelectKeywords {
		t.Fatalf("expected draft keyword picker, got %v", a.tasteMode)
	}
	press(a, keySpace, keyDown, keySpace, keyEsc)
	if got := len(a.tasteDraft.Keywords); got != 2 {
		t.Fatalf("expected 2 staged keywords, got %d", got)
	}
	if stored, _ := a.st.TasteProfiles(a.ctx); len(stored) != 0 {
		t.Fatalf("draft must not be persisted before commit")
	}

	// Name and commit.
	press(a, keyDown, keyEnter)
	typeText(a, "Baroque")
	press(a, keyEnter)

	if len(a.tasteProfiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(a.tasteProfiles))
	}
	p := a.tasteProfiles[0]
	if p.ID == 0 || p.Name != "Baroque" || !p.IsPublicDomain {
		t.Fatalf("unexpected profile %+v", p)
	}
	if p.DateStart == nil || *p.DateStart != 1600 || p.DateEnd == nil || *p.DateEnd != 1750 {
		t.Fatalf("unexpected dates %+v", p)
	}
	if len(p.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", p.Keywords)
	}
	if a.tasteSelected != 0 {
		t.Fatalf("expected new profile selected")
	}

	stored, err := a.st.TasteProfiles(a.ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "Baroque" || len(stored[0].Keywords) != 2 {
		t.Fatalf("unexpected persisted state %+v", stored)
	}
}
