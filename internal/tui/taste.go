package tui

import (
	"artgg/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type tasteMode int

const (
	tasteBrowse tasteMode = iota
	tasteDetail
	tasteEditingDate
	tasteSelectingKeywords
	tasteCreating
	tasteCreatingEditDate
	tasteCreatingSelectKeywords
	tasteCreatingName
)

// Taste detail/creation field rows. The detail view shows tasteFieldArtists
// (reserved) where the creation form shows the name row.
const (
	tasteFieldDateStart = 0
	tasteFieldDateEnd   = 1
	tasteFieldPublic    = 2
	tasteFieldKeywords  = 3
	tasteFieldArtists   = 4
	tasteFieldCount     = 5
)

func (a *App) handleTasteKey(msg tea.KeyMsg) {
	switch a.tasteMode {
	case tasteBrowse:
		a.handleTasteBrowse(msg)
	case tasteDetail:
		a.handleTasteDetail(msg)
	case tasteEditingDate:
		a.handleTasteEditingDate(msg)
	case tasteSelectingKeywords:
		a.handleTasteSelectingKeywords(msg)
	case tasteCreating:
		a.handleTasteCreating(msg)
	case tasteCreatingEditDate:
		a.handleTasteCreatingEditDate(msg)
	case tasteCreatingSelectKeywords:
		a.handleTasteCreatingSelectKeywords(msg)
	case tasteCreatingName:
		a.handleTasteCreatingName(msg)
	}
}

func (a *App) handleTasteBrowse(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		if len(a.tasteProfiles) > 0 {
			a.tasteSelected = clamp(a.tasteSelected-1, len(a.tasteProfiles))
		}
	case "down":
		if len(a.tasteProfiles) > 0 {
			a.tasteSelected = clamp(a.tasteSelected+1, len(a.tasteProfiles))
		}
	case "enter":
		if len(a.tasteProfiles) > 0 {
			a.tasteField = 0
			a.tasteMode = tasteDetail
		}
	case "a":
		a.tasteDraft = model.NewTasteDraft()
		a.tasteMode = tasteCreating
	case "d", "delete":
		a.deleteSelectedTaste()
	case "esc":
		a.screen = screenMain
	}
}

func (a *App) deleteSelectedTaste() {
	if len(a.tasteProfiles) == 0 {
		return
	}
	p := a.tasteProfiles[a.tasteSelected]
	if err := a.st.DeleteTasteProfile(a.ctx, p.ID); err != nil {
		a.fail(err)
		return
	}
	a.tasteProfiles = append(a.tasteProfiles[:a.tasteSelected], a.tasteProfiles[a.tasteSelected+1:]...)
	a.tasteSelected = clamp(a.tasteSelected, len(a.tasteProfiles))
}

func (a *App) handleTasteDetail(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		a.tasteField = clamp(a.tasteField-1, tasteFieldCount)
	case "down":
		a.tasteField = clamp(a.tasteField+1, tasteFieldCount)
	case "enter":
		a.openTasteFieldEditor()
	case "e":
		if a.tasteField == tasteFieldDateStart || a.tasteField == tasteFieldDateEnd {
			a.openTasteFieldEditor()
		}
	case " ":
		if a.tasteField == tasteFieldPublic {
			a.togglePublicDomain()
		}
	case "esc":
		a.tasteMode = tasteBrowse
	}
}

func (a *App) openTasteFieldEditor() {
	p := &a.tasteProfiles[a.tasteSelected]
	switch a.tasteField {
	case tasteFieldDateStart:
		a.tasteInput = newYearInput(yearBuffer(p.DateStart))
		a.tasteMode = tasteEditingDate
	case tasteFieldDateEnd:
		a.tasteInput = newYearInput(yearBuffer(p.DateEnd))
		a.tasteMode = tasteEditingDate
	case tasteFieldPublic:
		a.togglePublicDomain()
	case tasteFieldKeywords:
		a.keywordCursor = 0
		a.tasteMode = tasteSelectingKeywords
	case tasteFieldArtists:
		// Reserved.
	}
}

func (a *App) togglePublicDomain() {
	p := &a.tasteProfiles[a.tasteSelected]
	p.IsPublicDomain = !p.IsPublicDomain
	if err := a.st.UpdateTasteProfile(a.ctx, p.ID, p.DateStart, p.DateEnd, p.IsPublicDomain); err != nil {
		a.fail(err)
	}
}

func (a *App) handleTasteEditingDate(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		p := &a.tasteProfiles[a.tasteSelected]
		v := parseYear(a.tasteInput.Value())
		if a.tasteField == tasteFieldDateStart {
			p.DateStart = v
		} else {
			p.DateEnd = v
		}
		if err := a.st.UpdateTasteProfile(a.ctx, p.ID, p.DateStart, p.DateEnd, p.IsPublicDomain); err != nil {
			a.fail(err)
			return
		}
		a.tasteMode = tasteDetail
	case "esc":
		a.tasteMode = tasteDetail
	default:
		a.tasteInput, _ = a.tasteInput.Update(msg)
	}
}

func (a *App) handleTasteSelectingKeywords(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		if len(a.keywords) > 0 {
			a.keywordCursor = clamp(a.keywordCursor-1, len(a.keywords))
		}
	case "down":
		if len(a.keywords) > 0 {
			a.keywordCursor = clamp(a.keywordCursor+1, len(a.keywords))
		}
	case "enter", " ":
		a.toggleProfileKeyword()
	case "esc":
		a.tasteMode = tasteDetail
	}
}

// toggleProfileKeyword flips membership of the keyword under the cursor and
// persists the single association immediately. Removing always succeeds;
// adding is refused at the 10-entry cap.
func (a *App) toggleProfileKeyword() {
	if len(a.keywords) == 0 {
		return
	}
	kw := a.keywords[a.keywordCursor]
	p := &a.tasteProfiles[a.tasteSelected]
	for i, v := range p.Keywords {
		if v == kw.Value {
			if err := a.st.RemoveProfileKeyword(a.ctx, p.ID, kw.ID); err != nil {
				a.fail(err)
				return
			}
			p.Keywords = append(p.Keywords[:i], p.Keywords[i+1:]...)
			return
		}
	}
	if len(p.Keywords) >= model.MaxProfileKeywords {
		return
	}
	if err := a.st.AddProfileKeyword(a.ctx, p.ID, kw.ID); err != nil {
		a.fail(err)
		return
	}
	p.Keywords = append(p.Keywords, kw.Value)
}

func (a *App) handleTasteCreating(msg tea.KeyMsg) {
	d := &a.tasteDraft
	switch msg.String() {
	case "up":
		d.CurrentField = clamp(d.CurrentField-1, model.DraftFieldCount)
	case "down":
		d.CurrentField = clamp(d.CurrentField+1, model.DraftFieldCount)
	case "enter":
		switch d.CurrentField {
		case tasteFieldDateStart:
			a.tasteInput = newYearInput(yearBuffer(d.DateStart))
			a.tasteMode = tasteCreatingEditDate
		case tasteFieldDateEnd:
			a.tasteInput = newYearInput(yearBuffer(d.DateEnd))
			a.tasteMode = tasteCreatingEditDate
		case tasteFieldPublic:
			d.IsPublicDomain = !d.IsPublicDomain
		case tasteFieldKeywords:
			a.keywordCursor = 0
			a.tasteMode = tasteCreatingSelectKeywords
		case model.DraftFieldName:
			a.tasteInput = newEditInput(d.Name)
			a.tasteMode = tasteCreatingName
		}
	case " ":
		if d.CurrentField == tasteFieldPublic {
			d.IsPublicDomain = !d.IsPublicDomain
		}
	case "esc":
		// Abandon the whole draft.
		a.tasteMode = tasteBrowse
	}
}

func (a *App) handleTasteCreatingEditDate(msg tea.KeyMsg) {
	d := &a.tasteDraft
	switch msg.String() {
	case "enter":
		v := parseYear(a.tasteInput.Value())
		if d.CurrentField == tasteFieldDateStart {
			d.DateStart = v
		} else {
			d.DateEnd = v
		}
		a.tasteMode = tasteCreating
	case "esc":
		a.tasteMode = tasteCreating
	default:
		a.tasteInput, _ = a.tasteInput.Update(msg)
	}
}

func (a *App) handleTasteCreatingSelectKeywords(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		if len(a.keywords) > 0 {
			a.keywordCursor = clamp(a.keywordCursor-1, len(a.keywords))
		}
	case "down":
		if len(a.keywords) > 0 {
			a.keywordCursor = clamp(a.keywordCursor+1, len(a.keywords))
		}
	case "enter", " ":
		if len(a.keywords) > 0 {
			a.tasteDraft.ToggleKeyword(a.keywords[a.keywordCursor].Value)
		}
	case "esc":
		a.tasteMode = tasteCreating
	}
}

func (a *App) handleTasteCreatingName(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		if a.tasteInput.Value() != "" {
			a.commitTasteDraft(a.tasteInput.Value())
		}
	case "esc":
		// Keep typed text: the name round-trips into the draft so the user
		// can revisit earlier fields without losing it.
		a.tasteDraft.Name = a.tasteInput.Value()
		a.tasteDraft.CurrentField = model.DraftFieldName
		a.tasteMode = tasteCreating
	default:
		a.tasteInput, _ = a.tasteInput.Update(msg)
	}
}

// commitTasteDraft inserts the staged profile as a single new row, then one
// association row per staged keyword that resolves against the catalog.
// Unresolved values are skipped; they cannot occur when keywords were picked
// from the catalog.
func (a *App) commitTasteDraft(name string) {
	d := &a.tasteDraft
	id, err := a.st.InsertTasteProfile(a.ctx, name, d.DateStart, d.DateEnd, d.IsPublicDomain)
	if err != nil {
		a.fail(err)
		return
	}
	var resolved []string
	for _, v := range d.Keywords {
		kw, ok := a.catalogKeyword(v)
		if !ok {
			continue
		}
		if err := a.st.AddProfileKeyword(a.ctx, id, kw.ID); err != nil {
			a.fail(err)
			return
		}
		resolved = append(resolved, v)
	}
	a.tasteProfiles = append(a.tasteProfiles, model.TasteProfile{
		ID:             id,
		Name:           name,
		DateStart:      d.DateStart,
		DateEnd:        d.DateEnd,
		IsPublicDomain: d.IsPublicDomain,
		Keywords:       resolved,
	})
	a.tasteSelected = len(a.tasteProfiles) - 1
	a.tasteMode = tasteBrowse
}

func (a *App) catalogKeyword(value string) (model.Keyword, bool) {
	for _, kw := range a.keywords {
		if kw.Value == value {
			return kw, true
		}
	}
	return model.Keyword{}, false
}
