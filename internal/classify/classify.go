// Package classify decides a content role for each extracted fragment from
// typographic and textual cues alone, without any per-document template.
package classify

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	maxHeaderLen    = 50
	maxSubheaderLen = 30
	// Estimated font sizes above this are treated as header-sized. Tuned to
	// the partitioner's coordinate scale; recalibrate if that changes.
	headerFontSize = 12.0
)

// Classify assigns a content role to a fragment. Checks run in a fixed
// precedence order and the first match wins, so ambiguous text (a bold,
// colon-terminated line that also looks like a date range) always resolves
// the same way.
func Classify(f *types.Fragment) types.ContentType {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return types.ContentGeneric
	}

	if isBulletPoint(text) {
		return types.ContentBulletPoint
	}
	if isDateRange(text) {
		return types.ContentDateRange
	}
	if isCompanyName(text) {
		return types.ContentCompanyName
	}
	if isJobTitle(text) {
		return types.ContentJobTitle
	}
	if isSectionHeader(f, text) {
		return types.ContentSectionHeader
	}
	if isSubsectionHeader(f, text) {
		return types.ContentSubsectionHeader
	}
	return types.ContentGeneric
}

func isBulletPoint(text string) bool {
	for _, p := range bulletPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func isDateRange(text string) bool {
	for _, p := range dateRangePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func isCompanyName(text string) bool {
	// All-caps matching is only meaningful for short strings; long all-caps
	// lines are usually headers or shouted prose.
	if len(text) <= 40 && companyPatterns[1].MatchString(text) {
		return true
	}
	if companyPatterns[0].MatchString(text) || companyPatterns[2].MatchString(text) {
		return true
	}
	return false
}

func isJobTitle(text string) bool {
	return jobTitlePattern.MatchString(text)
}

func isSectionHeader(f *types.Fragment, text string) bool {
	if len(text) > maxHeaderLen {
		return false
	}
	if strings.HasSuffix(text, ":") {
		return true
	}
	if isAllUpper(text) || isTitleCased(text) {
		// Capitalized prose is still prose.
		return !containsContentIndicator(text)
	}
	if f.Style != nil && f.Style.IsBold {
		return true
	}
	if f.Style != nil && f.Style.FontSize > headerFontSize {
		return true
	}
	return isStandalone(text)
}

func isSubsectionHeader(f *types.Fragment, text string) bool {
	if len(text) < maxSubheaderLen && strings.HasSuffix(text, ":") {
		return true
	}
	if f.Style != nil && f.Style.IsBold && len(text) < maxSubheaderLen {
		return true
	}
	return false
}

// isStandalone reports whether text reads as a label rather than part of a
// sentence: short without terminal punctuation, short all-caps, or short with
// no stop words.
func isStandalone(text string) bool {
	if len(text) < 20 && !endsWithTerminalPunct(text) {
		return true
	}
	if isAllUpper(text) && len(text) < 30 {
		return true
	}
	if len(text) < 40 && !containsStopWord(text) {
		return true
	}
	return false
}

func containsContentIndicator(text string) bool {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := contentIndicators[strings.Trim(w, ".,:;!?")]; ok {
			return true
		}
	}
	return false
}

func containsStopWord(text string) bool {
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if _, ok := stopWords[strings.Trim(w, ".,:;!?")]; ok {
			return true
		}
	}
	return false
}

func endsWithTerminalPunct(text string) bool {
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, ":") ||
		strings.HasSuffix(text, ";") || strings.HasSuffix(text, "!") ||
		strings.HasSuffix(text, "?")
}

// isAllUpper reports whether text contains at least one letter and no
// lowercase letters.
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCased reports whether text starts with an uppercase letter and is
// not entirely lowercase.
func isTitleCased(text string) bool {
	runes := []rune(text)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	return strings.ToLower(text) != text
}
