// Package types provides type definitions for the structured data flowing
// through the resume parsing pipeline: positioned document fragments,
// classified content roles, section groupings, and the final parsed document.
package types

// FragmentCategory is the advisory role a fragment carries out of the
// extraction layer. It mirrors the partitioner's element taxonomy; downstream
// classification treats it as a hint, not an authority.
type FragmentCategory string

// Fragment categories produced by the extraction layer
const (
	CategoryTitle         FragmentCategory = "Title"
	CategoryNarrativeText FragmentCategory = "NarrativeText"
	CategoryListItem      FragmentCategory = "ListItem"
	CategoryTable         FragmentCategory = "Table"
	CategoryHeader        FragmentCategory = "Header"
	CategoryFooter        FragmentCategory = "Footer"
	CategoryEmailAddress  FragmentCategory = "EmailAddress"
	CategoryAddress       FragmentCategory = "Address"
	CategoryPhoneNumber   FragmentCategory = "PhoneNumber"
)

// BoundingBox holds a fragment's page-space extent plus derived values
// computed once at construction. Coordinates use the partitioner's units.
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`

	// Derived, cached by NewBoundingBox
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Area    float64 `json:"area"`
}

// NewBoundingBox builds a BoundingBox from corner coordinates, normalizing
// inverted corners and caching the derived fields.
func NewBoundingBox(x1, y1, x2, y2 float64) *BoundingBox {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	w := x2 - x1
	h := y2 - y1
	return &BoundingBox{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Width:   w,
		Height:  h,
		CenterX: (x1 + x2) / 2,
		CenterY: (y1 + y2) / 2,
		Area:    w * h,
	}
}

// StyleHint carries typographic cues the partitioner reported for a fragment.
type StyleHint struct {
	IsBold   bool    `json:"is_bold"`
	IsItalic bool    `json:"is_italic"`
	FontSize float64 `json:"font_size,omitempty"` // estimated, 0 = unknown
}

// Fragment is one positioned unit of extracted document content. Fragments are
// created once by the extraction layer and never mutated afterwards.
type Fragment struct {
	Text     string           `json:"text"`
	Category FragmentCategory `json:"category"`
	Page     int              `json:"page,omitempty"` // 1-based, 0 = unknown
	Box      *BoundingBox     `json:"box,omitempty"`
	Style    *StyleHint       `json:"style,omitempty"`
}

// HasCoordinates reports whether the fragment carries usable spatial
// information. Fragments without coordinates keep their extraction order
// during assembly.
func (f *Fragment) HasCoordinates() bool {
	return f.Box != nil
}

// ContentType is the per-fragment role decided by the typographic classifier.
// It is an annotation produced during assembly, not stored on the Fragment.
type ContentType string

// Content types in classification precedence order
const (
	ContentBulletPoint      ContentType = "bullet_point"
	ContentDateRange        ContentType = "date_range"
	ContentCompanyName      ContentType = "company_name"
	ContentJobTitle         ContentType = "job_title"
	ContentSectionHeader    ContentType = "section_header"
	ContentSubsectionHeader ContentType = "subsection_header"
	ContentGeneric          ContentType = "content"
)
