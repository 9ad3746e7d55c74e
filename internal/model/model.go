package model

// Orientation values for display profiles. Exactly these two exist.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// MaxProfileKeywords caps the number of keywords attached to one taste profile.
const MaxProfileKeywords = 10

// TasteProfile is a persisted art-selection preference record.
// DateStart/DateEnd are years (may be negative for BCE); either may be unset
// independently and no ordering between them is enforced.
type TasteProfile struct {
	ID             int64
	Name           string
	DateStart      *int64
	DateEnd        *int64
	IsPublicDomain bool
	// Keywords holds catalog keyword values associated with this profile,
	// in the stable order the store returns them.
	Keywords []string
}

// DisplayProfile is a persisted rendering preference record.
type DisplayProfile struct {
	ID             int64
	Name           string
	WallpaperColor string
	// FrameStyle is reserved; the UI shows it but does not edit it yet.
	FrameStyle  string
	Orientation string
	AspectRatio string
}

// Keyword is one entry of the global keyword catalog. The catalog is
// populated by seeding (artgg seed); the UI only associates existing entries.
type Keyword struct {
	ID    int64
	Value string
}

// ToggleOrientation flips between the two orientation values. Any
// unrecognized input normalizes to horizontal, so a toggle can never
// introduce a third state.
func ToggleOrientation(o string) string {
	if o == OrientationHorizontal {
		return OrientationVertical
	}
	return OrientationHorizontal
}
