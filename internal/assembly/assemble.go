// Package assembly re-linearizes positioned fragments into a single markdown
// string that approximates the document's original visual structure: reading
// order from page/coordinate sorting, breaks from the magnitude of positional
// deltas, and inline markup from each fragment's classified content role.
package assembly

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/classify"
	"github.com/jonathan/resume-parser/internal/types"
)

// Gap thresholds in the partitioner's coordinate units. The tiered policy is
// what matters; the literal values are tuned to that scale and sit here for
// recalibration.
const (
	lineGap      = 15.0
	paragraphGap = 40.0
	sectionGap   = 80.0

	columnGapMedium = 50.0
	columnGapLarge  = 150.0
)

const pageBreakMarker = "\n\n---\n\n"

// Assemble sorts fragments into reading order and emits them as one formatted
// text stream. Sorting is stable: fragments tied on (page, vertical center,
// horizontal center), including those without coordinates, keep their original
// extraction order.
func Assemble(fragments []types.Fragment) string {
	ordered := make([]types.Fragment, len(fragments))
	copy(ordered, fragments)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, yi, xi := sortKey(&ordered[i])
		pj, yj, xj := sortKey(&ordered[j])
		if pi != pj {
			return pi < pj
		}
		if yi != yj {
			return yi < yj
		}
		return xi < xj
	})

	var b strings.Builder
	havePos := false
	curPage, curY, curX := 0, 0.0, 0.0

	for _, f := range ordered {
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}

		page, y, x := sortKey(&f)

		if havePos {
			if page != curPage {
				b.WriteString(pageBreakMarker)
			} else {
				writeVerticalSpacing(&b, y-curY)
				writeHorizontalSpacing(&b, x-curX)
			}
		}

		writeFragment(&b, text, classify.Classify(&f))

		curPage, curY, curX = page, y, x
		havePos = true
	}

	return Normalize(b.String())
}

// sortKey returns the reading-order key for a fragment. Missing coordinates
// yield zero values so the fragment falls back to extraction order via the
// stable sort.
func sortKey(f *types.Fragment) (page int, y, x float64) {
	page = f.Page
	if f.Box != nil {
		y = f.Box.CenterY
		x = f.Box.CenterX
	}
	return page, y, x
}

func writeVerticalSpacing(b *strings.Builder, dy float64) {
	if dy < 0 {
		dy = -dy
	}
	switch {
	case dy > sectionGap:
		b.WriteString("\n\n")
	case dy > paragraphGap:
		b.WriteString("\n")
	case dy > lineGap:
		b.WriteString("\n")
	}
}

func writeHorizontalSpacing(b *strings.Builder, dx float64) {
	if dx < 0 {
		dx = -dx
	}
	switch {
	case dx > columnGapLarge:
		b.WriteString("    ")
	case dx > columnGapMedium:
		b.WriteString("  ")
	}
}

func writeFragment(b *strings.Builder, text string, role types.ContentType) {
	switch role {
	case types.ContentSectionHeader:
		b.WriteString("\n## ")
		b.WriteString(text)
		b.WriteString("\n")
	case types.ContentSubsectionHeader:
		b.WriteString("\n### ")
		b.WriteString(text)
		b.WriteString("\n")
	case types.ContentBulletPoint:
		b.WriteString("• ")
		b.WriteString(text)
		writeTrailingSpace(b, text)
	case types.ContentCompanyName, types.ContentJobTitle:
		b.WriteString("**")
		b.WriteString(text)
		b.WriteString("**")
		writeTrailingSpace(b, text)
	case types.ContentDateRange:
		b.WriteString("*")
		b.WriteString(text)
		b.WriteString("*")
		writeTrailingSpace(b, text)
	default:
		b.WriteString(text)
		writeTrailingSpace(b, text)
	}
}

// writeTrailingSpace appends a separator space unless the text already ends
// in terminal punctuation, to avoid run-on concatenation.
func writeTrailingSpace(b *strings.Builder, text string) {
	switch {
	case strings.HasSuffix(text, "."), strings.HasSuffix(text, ":"),
		strings.HasSuffix(text, ";"), strings.HasSuffix(text, "!"),
		strings.HasSuffix(text, "?"):
	default:
		b.WriteString(" ")
	}
}
