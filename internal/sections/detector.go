// Package sections groups extracted fragments into named resume sections by
// scanning for canonical header vocabulary and carrying a running "current
// section" forward through the document.
package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Headers appear in short fragments; narrative text longer than this is never
// treated as a header even when it contains a matching word.
const maxHeaderTextLen = 50

// Confidence scoring: base score plus bonuses for supporting evidence,
// clamped to 1.0.
const (
	baseConfidence         = 0.5
	headerBonus            = 0.3
	structuredContactBonus = 0.2
	skillsListBonus        = 0.2
	lowConfidenceFloor     = 0.6
)

// Group assigns every fragment to exactly one section group and scores each
// group. Groups are returned in first-appearance order; repeated runs of the
// same section merge into one group. The returned warnings report missing
// critical sections and low-confidence groupings.
func Group(fragments []types.Fragment) ([]types.SectionGroup, []string) {
	bySection := make(map[types.ResumeSection][]types.Fragment)
	var order []types.ResumeSection

	appendTo := func(section types.ResumeSection, f types.Fragment) {
		if _, seen := bySection[section]; !seen {
			order = append(order, section)
		}
		bySection[section] = append(bySection[section], f)
	}

	current := types.SectionUnknown
	for _, f := range fragments {
		if detected := DetectHeader(&f); detected != types.SectionUnknown {
			current = detected
		}
		// Contact details are often interleaved with other content
		// spatially, so they bypass the state machine entirely.
		if IsContactFragment(&f) {
			appendTo(types.SectionContact, f)
			continue
		}
		appendTo(current, f)
	}

	groups := make([]types.SectionGroup, 0, len(order))
	for _, section := range order {
		groups = append(groups, types.SectionGroup{
			Section:    section,
			Fragments:  bySection[section],
			Confidence: scoreGroup(section, bySection[section]),
		})
	}

	return groups, validate(groups)
}

// DetectHeader reports which section a fragment opens, or SectionUnknown.
// Only short Title/Header/NarrativeText fragments qualify as headers.
func DetectHeader(f *types.Fragment) types.ResumeSection {
	switch f.Category {
	case types.CategoryTitle, types.CategoryHeader, types.CategoryNarrativeText:
	default:
		return types.SectionUnknown
	}

	text := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(f.Text), ":"))
	if text == "" || len(text) > maxHeaderTextLen {
		return types.SectionUnknown
	}

	// Fixed probe order keeps detection deterministic even if a header ever
	// matched more than one section's vocabulary.
	for _, section := range sectionProbeOrder {
		for _, p := range headerPatterns[section] {
			if p.MatchString(text) {
				return section
			}
		}
	}
	return types.SectionUnknown
}

var sectionProbeOrder = []types.ResumeSection{
	types.SectionContact,
	types.SectionSummary,
	types.SectionObjective,
	types.SectionSkills,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionCertifications,
	types.SectionProjects,
	types.SectionAwards,
	types.SectionReferences,
}

// IsContactFragment reports whether a fragment carries contact details,
// either by extraction category or by content pattern.
func IsContactFragment(f *types.Fragment) bool {
	switch f.Category {
	case types.CategoryEmailAddress, types.CategoryPhoneNumber, types.CategoryAddress:
		return true
	}
	for _, p := range contactPatterns {
		if p.MatchString(f.Text) {
			return true
		}
	}
	return false
}

func scoreGroup(section types.ResumeSection, fragments []types.Fragment) float64 {
	confidence := baseConfidence

	for _, f := range fragments {
		if f.Category == types.CategoryTitle || f.Category == types.CategoryHeader {
			confidence += headerBonus
			break
		}
	}

	if section == types.SectionContact {
		for _, f := range fragments {
			if f.Category == types.CategoryEmailAddress || f.Category == types.CategoryPhoneNumber {
				confidence += structuredContactBonus
				break
			}
		}
	}

	if section == types.SectionSkills {
		for _, f := range fragments {
			if f.Category == types.CategoryListItem {
				confidence += skillsListBonus
				break
			}
		}
	}

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func validate(groups []types.SectionGroup) []string {
	var warnings []string

	present := make(map[types.ResumeSection]bool, len(groups))
	var lowConfidence []string
	for _, g := range groups {
		present[g.Section] = true
		if g.Confidence < lowConfidenceFloor {
			lowConfidence = append(lowConfidence, string(g.Section))
		}
	}

	if !present[types.SectionContact] {
		warnings = append(warnings, "no contact information section detected")
	}
	if !present[types.SectionExperience] {
		warnings = append(warnings, "no work experience section detected")
	}
	if len(lowConfidence) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"low confidence in section classification: %s", strings.Join(lowConfidence, ", ")))
	}

	return warnings
}
