package model

import "strings"

// Drafts stage a new profile in memory across multiple input steps. They have
// no identity until committed; the commit inserts exactly one row carrying
// every staged field. Keeping them as separate types from the persisted
// entities makes the commit boundary explicit.

// Draft field indexes. Both entity types expose five form rows, with Name
// always last.
const (
	DraftFieldCount = 5
	DraftFieldName  = 4
)

// TasteDraft rows: 0 date start, 1 date end, 2 public domain, 3 keywords, 4 name.
type TasteDraft struct {
	Name           string
	DateStart      *int64
	DateEnd        *int64
	IsPublicDomain bool
	Keywords       []string
	CurrentField   int
}

// NewTasteDraft returns a draft with all fields unset.
func NewTasteDraft() TasteDraft {
	return TasteDraft{}
}

// HasKeyword reports whether value is already staged on the draft.
func (d *TasteDraft) HasKeyword(value string) bool {
	for _, kw := range d.Keywords {
		if kw == value {
			return true
		}
	}
	return false
}

// ToggleKeyword adds or removes value from the staged keyword list. Removal
// always succeeds; adding is refused once the draft holds MaxProfileKeywords
// entries.
func (d *TasteDraft) ToggleKeyword(value string) {
	for i, kw := range d.Keywords {
		if kw == value {
			d.Keywords = append(d.Keywords[:i], d.Keywords[i+1:]...)
			return
		}
	}
	if len(d.Keywords) >= MaxProfileKeywords {
		return
	}
	d.Keywords = append(d.Keywords, value)
}

// DisplayDraft rows: 0 color, 1 frame style (reserved), 2 orientation,
// 3 aspect ratio, 4 name.
type DisplayDraft struct {
	Name           string
	WallpaperColor string
	FrameStyle     string
	Orientation    string
	AspectRatio    string
	CurrentField   int
}

// NewDisplayDraft returns a draft with the stock rendering defaults.
func NewDisplayDraft() DisplayDraft {
	return DisplayDraft{
		WallpaperColor: "#000000",
		Orientation:    OrientationHorizontal,
		AspectRatio:    "16:9",
	}
}

// SuggestedName is the default name offered when the naming step opens with
// an empty buffer: the capitalized orientation word followed by the aspect
// ratio (e.g. "Vertical 16:9").
func (d *DisplayDraft) SuggestedName() string {
	o := d.Orientation
	if o == "" {
		o = OrientationHorizontal
	}
	o = strings.ToUpper(o[:1]) + o[1:]
	return strings.TrimSpace(o + " " + d.AspectRatio)
}
