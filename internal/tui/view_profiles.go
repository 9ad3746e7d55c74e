package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"artgg/internal/model"
)

func (a *App) viewTaste() string {
	leftWidth := max(a.width*2/5, 24)
	rightWidth := max(a.width-leftWidth-6, 30)

	var names []string
	for _, p := range a.tasteProfiles {
		names = append(names, p.Name)
	}
	cursor := a.tasteSelected
	if len(a.tasteProfiles) == 0 {
		cursor = -1
	}
	left := paneStyle(false).Width(leftWidth).Render(
		styleMuted().Render("Taste Profiles") + "\n" + listRows(names, cursor, leftWidth-4))

	var right string
	switch a.tasteMode {
	case tasteBrowse:
		if len(a.tasteProfiles) == 0 {
			right = paneStyle(false).Width(rightWidth).Render(
				styleMuted().Render("Actions") + "\n\n" +
					styleAccent().Render(" a ") + "add profile\n" +
					styleAccent().Render(" Esc ") + "back to menu")
		} else {
			p := a.tasteProfiles[a.tasteSelected]
			right = paneStyle(false).Width(rightWidth).Render(
				styleMuted().Render(p.Name) + "\n" + a.tasteDetailRows(p, -1, false))
		}
	case tasteDetail, tasteEditingDate:
		p := a.tasteProfiles[a.tasteSelected]
		editing := -1
		if a.tasteMode == tasteEditingDate {
			editing = a.tasteField
		}
		right = paneStyle(true).Width(rightWidth).Render(
			styleMuted().Render(p.Name) + "\n" + a.tasteDetailRows(p, editing, true))
	case tasteSelectingKeywords:
		p := a.tasteProfiles[a.tasteSelected]
		right = a.keywordPicker(rightWidth, p.Keywords)
	case tasteCreating, tasteCreatingEditDate, tasteCreatingName:
		right = paneStyle(true).Width(rightWidth).Render(
			styleMuted().Render("New Taste Profile") + "\n" + a.tasteCreatingRows())
	case tasteCreatingSelectKeywords:
		right = a.keywordPicker(rightWidth, a.tasteDraft.Keywords)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// tasteDetailRows renders the five detail rows. editing names the field whose
// edit buffer replaces its value, -1 for none; cursor controls whether the
// field cursor is drawn.
func (a *App) tasteDetailRows(p model.TasteProfile, editing int, cursor bool) string {
	ds := optYear(p.DateStart)
	de := optYear(p.DateEnd)
	if editing == tasteFieldDateStart {
		ds = a.tasteInput.Value() + editBufferCursor
	}
	if editing == tasteFieldDateEnd {
		de = a.tasteInput.Value() + editBufferCursor
	}
	sel := func(i int) bool { return cursor && a.tasteField == i }
	rows := []string{
		fieldRow("Date Start", ds, sel(tasteFieldDateStart), false),
		fieldRow("Date End", de, sel(tasteFieldDateEnd), false),
		fieldRow("Public Domain", yesNo(p.IsPublicDomain), sel(tasteFieldPublic), false),
		fieldRow("Keywords", fmt.Sprintf("%d/%d", len(p.Keywords), model.MaxProfileKeywords), sel(tasteFieldKeywords), false),
		fieldRow("Artists", "(coming soon)", sel(tasteFieldArtists), true),
	}
	return strings.Join(rows, "\n")
}

// tasteCreatingRows renders the creation form: the draft's fields with the
// name row last, substituting the live edit buffer where one is open.
func (a *App) tasteCreatingRows() string {
	d := a.tasteDraft
	ds := optYear(d.DateStart)
	de := optYear(d.DateEnd)
	name := d.Name
	if name == "" {
		name = "(enter name)"
	}
	if a.tasteMode == tasteCreatingEditDate {
		if d.CurrentField == tasteFieldDateStart {
			ds = a.tasteInput.Value() + editBufferCursor
		} else {
			de = a.tasteInput.Value() + editBufferCursor
		}
	}
	if a.tasteMode == tasteCreatingName {
		name = a.tasteInput.Value() + editBufferCursor
	}
	sel := func(i int) bool { return d.CurrentField == i }
	rows := []string{
		fieldRow("Date Start", ds, sel(tasteFieldDateStart), false),
		fieldRow("Date End", de, sel(tasteFieldDateEnd), false),
		fieldRow("Public Domain", yesNo(d.IsPublicDomain), sel(tasteFieldPublic), false),
		fieldRow("Keywords", fmt.Sprintf("%d/%d", len(d.Keywords), model.MaxProfileKeywords), sel(tasteFieldKeywords), false),
		fieldRow("Name", name, sel(model.DraftFieldName), false),
	}
	return strings.Join(rows, "\n")
}

// keywordPicker renders the catalog checklist shared by the detail and
// creation flows; selected holds the values currently on the profile/draft.
func (a *App) keywordPicker(width int, selected []string) string {
	title := styleMuted().Render("Select Keywords")
	if len(a.keywords) == 0 {
		return paneStyle(true).Width(width).Render(
			title + "\n" + styleMuted().Render("(no keywords in database yet)"))
	}
	on := make(map[string]bool, len(selected))
	for _, v := range selected {
		on[v] = true
	}
	var rows []string
	for i, kw := range a.keywords {
		box := "[ ] "
		if on[kw.Value] {
			box = "[x] "
		}
		row := box + truncate(kw.Value, width-8)
		if i == a.keywordCursor {
			rows = append(rows, styleSelected().Render("> "+row))
		} else {
			rows = append(rows, "  "+row)
		}
	}
	return paneStyle(true).Width(width).Render(title + "\n" + strings.Join(rows, "\n"))
}

func (a *App) tasteHints() [][2]string {
	kwCount := 0
	switch a.tasteMode {
	case tasteSelectingKeywords:
		if len(a.tasteProfiles) > 0 {
			kwCount = len(a.tasteProfiles[a.tasteSelected].Keywords)
		}
	case tasteCreatingSelectKeywords:
		kwCount = len(a.tasteDraft.Keywords)
	}
	switch a.tasteMode {
	case tasteBrowse:
		if len(a.tasteProfiles) == 0 {
			return [][2]string{{"a", "add"}, {"Esc", "back"}}
		}
		return [][2]string{{"↑↓", "select"}, {"Enter", "edit"}, {"a", "add"}, {"d", "delete"}, {"Esc", "back"}}
	case tasteDetail:
		return [][2]string{{"↑↓", "navigate"}, {"Enter", "edit"}, {"Esc", "back"}}
	case tasteSelectingKeywords, tasteCreatingSelectKeywords:
		toggle := fmt.Sprintf("toggle (%d/%d)", kwCount, model.MaxProfileKeywords)
		return [][2]string{{"↑↓", "navigate"}, {"Space", toggle}, {"Esc", "done"}}
	case tasteCreating:
		return [][2]string{{"↑↓", "navigate"}, {"Enter", "select"}, {"Esc", "cancel"}}
	default: // edit buffers
		return [][2]string{{"Enter", "confirm"}, {"Esc", "cancel"}}
	}
}

func (a *App) viewDisplay() string {
	leftWidth := max(a.width*2/5, 24)
	rightWidth := max(a.width-leftWidth-6, 30)

	var names []string
	for _, p := range a.displayProfiles {
		names = append(names, p.Name)
	}
	cursor := a.displaySelected
	if len(a.displayProfiles) == 0 {
		cursor = -1
	}
	left := paneStyle(false).Width(leftWidth).Render(
		styleMuted().Render("Display Profiles") + "\n" + listRows(names, cursor, leftWidth-4))

	var right string
	switch a.displayMode {
	case displayBrowse:
		if len(a.displayProfiles) == 0 {
			right = paneStyle(false).Width(rightWidth).Render(
				styleMuted().Render("Actions") + "\n\n" +
					styleAccent().Render(" a ") + "add profile\n" +
					styleAccent().Render(" Esc ") + "back to menu")
		} else {
			p := a.displayProfiles[a.displaySelected]
			right = paneStyle(false).Width(rightWidth).Render(
				styleMuted().Render(p.Name) + "\n" + a.displayDetailRows(p, -1, false))
		}
	case displayDetail, displayEditingText:
		p := a.displayProfiles[a.displaySelected]
		editing := -1
		if a.displayMode == displayEditingText {
			editing = a.displayField
		}
		right = paneStyle(true).Width(rightWidth).Render(
			styleMuted().Render(p.Name) + "\n" + a.displayDetailRows(p, editing, true))
	case displayCreating, displayCreatingEditText, displayCreatingName:
		right = paneStyle(true).Width(rightWidth).Render(
			styleMuted().Render("New Display Profile") + "\n" + a.displayCreatingRows())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func orientationLabel(o string) string {
	if o == model.OrientationHorizontal {
		return "Horizontal"
	}
	return "Vertical"
}

func (a *App) displayDetailRows(p model.DisplayProfile, editing int, cursor bool) string {
	color := p.WallpaperColor
	ratio := p.AspectRatio
	if editing == displayFieldColor {
		color = a.displayInput.Value() + editBufferCursor
	}
	if editing == displayFieldRatio {
		ratio = a.displayInput.Value() + editBufferCursor
	}
	sel := func(i int) bool { return cursor && a.displayField == i }
	rows := []string{
		fieldRow("Color", color, sel(displayFieldColor), false),
		fieldRow("Frame Style", "(coming soon)", sel(displayFieldFrame), true),
		fieldRow("Orientation", orientationLabel(p.Orientation), sel(displayFieldOrientation), false),
		fieldRow("Aspect Ratio", ratio, sel(displayFieldRatio), false),
	}
	return strings.Join(rows, "\n")
}

func (a *App) displayCreatingRows() string {
	d := a.displayDraft
	color := d.WallpaperColor
	ratio := d.AspectRatio
	name := d.Name
	if name == "" {
		name = "(enter name)"
	}
	if a.displayMode == displayCreatingEditText {
		if d.CurrentField == displayFieldColor {
			color = a.displayInput.Value() + editBufferCursor
		} else {
			ratio = a.displayInput.Value() + editBufferCursor
		}
	}
	if a.displayMode == displayCreatingName {
		name = a.displayInput.Value() + editBufferCursor
	}
	sel := func(i int) bool { return d.CurrentField == i }
	rows := []string{
		fieldRow("Color", color, sel(displayFieldColor), false),
		fieldRow("Frame Style", "(coming soon)", sel(displayFieldFrame), true),
		fieldRow("Orientation", orientationLabel(d.Orientation), sel(displayFieldOrientation), false),
		fieldRow("Aspect Ratio", ratio, sel(displayFieldRatio), false),
		fieldRow("Name", name, sel(model.DraftFieldName), false),
	}
	return strings.Join(rows, "\n")
}

func (a *App) displayHints() [][2]string {
	switch a.displayMode {
	case displayBrowse:
		if len(a.displayProfiles) == 0 {
			return [][2]string{{"a", "add"}, {"Esc", "back"}}
		}
		return [][2]string{{"↑↓", "select"}, {"Enter", "edit"}, {"a", "add"}, {"d", "delete"}, {"Esc", "back"}}
	case displayDetail:
		return [][2]string{{"↑↓", "navigate"}, {"Enter", "edit"}, {"Esc", "back"}}
	case displayCreating:
		return [][2]string{{"↑↓", "navigate"}, {"Enter", "select"}, {"Esc", "cancel"}}
	default:
		return [][2]string{{"Enter", "confirm"}, {"Esc", "cancel"}}
	}
}
