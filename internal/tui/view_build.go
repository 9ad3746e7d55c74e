package tui

import (
	"strings"

	"artgg/internal/model"
)

func (a *App) viewBuild() string {
	width := max(a.width-4, 40)

	steps := []struct {
		label string
		step  buildStep
	}{
		{"1. Taste Profile", buildPickTaste},
		{"2. Display Profile", buildPickDisplay},
		{"3. Output Dir", buildPickOutputDir},
	}
	var parts []string
	for _, s := range steps {
		if s.step == a.buildStep {
			parts = append(parts, styleSelected().Render(s.label))
		} else {
			parts = append(parts, styleMuted().Render(s.label))
		}
	}
	indicator := strings.Join(parts, styleMuted().Render("  →  "))

	var body string
	switch a.buildStep {
	case buildPickTaste:
		body = buildPickerPane("Select Taste Profile", tasteNames(a.tasteProfiles), a.buildTasteIdx, width)
	case buildPickDisplay:
		body = buildPickerPane("Select Display Profile", displayNames(a.displayProfiles), a.buildDisplayIdx, width)
	case buildPickOutputDir:
		body = paneStyle(true).Width(width).Render(
			styleMuted().Render("Output directory") + "\n" +
				a.buildOutput.Value() + editBufferCursor)
	}

	return indicator + "\n\n" + body
}

func tasteNames(ps []model.TasteProfile) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func displayNames(ps []model.DisplayProfile) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func buildPickerPane(title string, names []string, cursor, width int) string {
	if len(names) == 0 {
		return paneStyle(false).Width(width).Render(
			styleMuted().Render(title) + "\n" +
				"No profiles yet. Create one first.")
	}
	return paneStyle(false).Width(width).Render(
		styleMuted().Render(title) + "\n" + listRows(names, cursor, width-4))
}

func (a *App) buildHints() [][2]string {
	if a.buildStep == buildPickOutputDir {
		return [][2]string{{"Enter", "build"}, {"Esc", "back"}, {"Backspace", "edit"}}
	}
	return [][2]string{{"↑↓", "select"}, {"Enter", "next"}, {"Esc", "back"}}
}
