package tui

import (
	"artgg/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

type displayMode int

const (
	displayBrowse displayMode = iota
	displayDetail
	displayEditingText
	displayCreating
	displayCreatingEditText
	displayCreatingName
)

// Display detail/creation field rows. The creation form appends the name row
// after these.
const (
	displayFieldColor       = 0
	displayFieldFrame       = 1
	displayFieldOrientation = 2
	displayFieldRatio       = 3
	displayFieldCount       = 4
)

func (a *App) handleDisplayKey(msg tea.KeyMsg) {
	switch a.displayMode {
	case displayBrowse:
		a.handleDisplayBrowse(msg)
	case displayDetail:
		a.handleDisplayDetail(msg)
	case displayEditingText:
		a.handleDisplayEditingText(msg)
	case displayCreating:
		a.handleDisplayCreating(msg)
	case displayCreatingEditText:
		a.handleDisplayCreatingEditText(msg)
	case displayCreatingName:
		a.handleDisplayCreatingName(msg)
	}
}

func (a *App) handleDisplayBrowse(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		if len(a.displayProfiles) > 0 {
			a.displaySelected = clamp(a.displaySelected-1, len(a.displayProfiles))
		}
	case "down":
		if len(a.displayProfiles) > 0 {
			a.displaySelected = clamp(a.displaySelected+1, len(a.displayProfiles))
		}
	case "enter":
		if len(a.displayProfiles) > 0 {
			a.displayField = 0
			a.displayMode = displayDetail
		}
	case "a":
		a.displayDraft = model.NewDisplayDraft()
		a.displayMode = displayCreating
	case "d", "delete":
		a.deleteSelectedDisplay()
	case "esc":
		a.screen = screenMain
	}
}

func (a *App) deleteSelectedDisplay() {
	if len(a.displayProfiles) == 0 {
		return
	}
	p := a.displayProfiles[a.displaySelected]
	if err := a.st.DeleteDisplayProfile(a.ctx, p.ID); err != nil {
		a.fail(err)
		return
	}
	a.displayProfiles = append(a.displayProfiles[:a.displaySelected], a.displayProfiles[a.displaySelected+1:]...)
	a.displaySelected = clamp(a.displaySelected, len(a.displayProfiles))
}

func (a *App) handleDisplayDetail(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		a.displayField = clamp(a.displayField-1, displayFieldCount)
	case "down":
		a.displayField = clamp(a.displayField+1, displayFieldCount)
	case "enter":
		a.openDisplayFieldEditor()
	case "e":
		if a.displayField == displayFieldColor || a.displayField == displayFieldRatio {
			a.openDisplayFieldEditor()
		}
	case " ":
		if a.displayField == displayFieldOrientation {
			a.toggleOrientation()
		}
	case "esc":
		a.displayMode = displayBrowse
	}
}

func (a *App) openDisplayFieldEditor() {
	p := &a.displayProfiles[a.displaySelected]
	switch a.displayField {
	case displayFieldColor:
		a.displayInput = newEditInput(p.WallpaperColor)
		a.displayMode = displayEditingText
	case displayFieldFrame:
		// Reserved.
	case displayFieldOrientation:
		a.toggleOrientation()
	case displayFieldRatio:
		a.displayInput = newEditInput(p.AspectRatio)
		a.displayMode = displayEditingText
	}
}

func (a *App) toggleOrientation() {
	p := &a.displayProfiles[a.displaySelected]
	p.Orientation = model.ToggleOrientation(p.Orientation)
	a.persistDisplay(p)
}

func (a *App) persistDisplay(p *model.DisplayProfile) {
	if err := a.st.UpdateDisplayProfile(a.ctx, p.ID, p.WallpaperColor, p.FrameStyle, p.Orientation, p.AspectRatio); err != nil {
		a.fail(err)
	}
}

func (a *App) handleDisplayEditingText(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		p := &a.displayProfiles[a.displaySelected]
		if a.displayField == displayFieldColor {
			p.WallpaperColor = a.displayInput.Value()
		} else {
			p.AspectRatio = a.displayInput.Value()
		}
		a.persistDisplay(p)
		a.displayMode = displayDetail
	case "esc":
		a.displayMode = displayDetail
	default:
		a.displayInput, _ = a.displayInput.Update(msg)
	}
}

func (a *App) handleDisplayCreating(msg tea.KeyMsg) {
	d := &a.displayDraft
	switch msg.String() {
	case "up":
		d.CurrentField = clamp(d.CurrentField-1, model.DraftFieldCount)
	case "down":
		d.CurrentField = clamp(d.CurrentField+1, model.DraftFieldCount)
	case "enter":
		switch d.CurrentField {
		case displayFieldColor:
			a.displayInput = newEditInput(d.WallpaperColor)
			a.displayMode = displayCreatingEditText
		case displayFieldFrame:
			// Reserved.
		case displayFieldOrientation:
			d.Orientation = model.ToggleOrientation(d.Orientation)
		case displayFieldRatio:
			a.displayInput = newEditInput(d.AspectRatio)
			a.displayMode = displayCreatingEditText
		case model.DraftFieldName:
			name := d.Name
			if name == "" {
				name = d.SuggestedName()
			}
			a.displayInput = newEditInput(name)
			a.displayMode = displayCreatingName
		}
	case " ":
		if d.CurrentField == displayFieldOrientation {
			d.Orientation = model.ToggleOrientation(d.Orientation)
		}
	case "esc":
		a.displayMode = displayBrowse
	}
}

func (a *App) handleDisplayCreatingEditText(msg tea.KeyMsg) {
	d := &a.displayDraft
	switch msg.String() {
	case "enter":
		if d.CurrentField == displayFieldColor {
			d.WallpaperColor = a.displayInput.Value()
		} else {
			d.AspectRatio = a.displayInput.Value()
		}
		a.displayMode = displayCreating
	case "esc":
		a.displayMode = displayCreating
	default:
		a.displayInput, _ = a.displayInput.Update(msg)
	}
}

func (a *App) handleDisplayCreatingName(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		if a.displayInput.Value() != "" {
			a.commitDisplayDraft(a.displayInput.Value())
		}
	case "esc":
		a.displayDraft.Name = a.displayInput.Value()
		a.displayDraft.CurrentField = model.DraftFieldName
		a.displayMode = displayCreating
	default:
		a.displayInput, _ = a.displayInput.Update(msg)
	}
}

func (a *App) commitDisplayDraft(name string) {
	d := &a.displayDraft
	id, err := a.st.InsertDisplayProfile(a.ctx, name, d.WallpaperColor, d.FrameStyle, d.Orientation, d.AspectRatio)
	if err != nil {
		a.fail(err)
		return
	}
	a.displayProfiles = append(a.displayProfiles, model.DisplayProfile{
		ID:             id,
		Name:           name,
		WallpaperColor: d.WallpaperColor,
		FrameStyle:     d.FrameStyle,
		Orientation:    d.Orientation,
		AspectRatio:    d.AspectRatio,
	})
	a.displaySelected = len(a.displayProfiles) - 1
	a.displayMode = displayBrowse
}
