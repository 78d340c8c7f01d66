package types

import "strings"

// ResumeSection identifies a named resume section.
type ResumeSection string

// Canonical resume sections
const (
	SectionContact        ResumeSection = "contact"
	SectionSummary        ResumeSection = "summary"
	SectionObjective      ResumeSection = "objective"
	SectionSkills         ResumeSection = "skills"
	SectionExperience     ResumeSection = "experience"
	SectionEducation      ResumeSection = "education"
	SectionCertifications ResumeSection = "certifications"
	SectionProjects       ResumeSection = "projects"
	SectionAwards         ResumeSection = "awards"
	SectionReferences     ResumeSection = "references"
	SectionUnknown        ResumeSection = "unknown"
)

// SectionGroup is one run of fragments assigned to a resume section, in
// document order, with a heuristic confidence score in [0,1].
type SectionGroup struct {
	Section    ResumeSection `json:"section"`
	Fragments  []Fragment    `json:"fragments"`
	Confidence float64       `json:"confidence"`
}

// CombinedText joins the group's fragment texts with line breaks. It is
// computed on demand rather than stored.
func (g *SectionGroup) CombinedText() string {
	parts := make([]string, 0, len(g.Fragments))
	for _, f := range g.Fragments {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, "\n")
}

// ParsedDocument is the top-level parsing result. It is created by the
// extraction layer with empty GroupedSections, populated in place by the
// section detector, and treated as read-only once handed downstream.
type ParsedDocument struct {
	Filename        string         `json:"filename"`
	FileExtension   string         `json:"file_extension"`
	FileType        string         `json:"file_type"`
	TotalElements   int            `json:"total_elements"`
	DroppedElements int            `json:"dropped_elements,omitempty"`
	GroupedSections []SectionGroup `json:"grouped_sections"`
	ParsingWarnings []string       `json:"parsing_warnings"`
}

// GetSection returns the group for a section, or nil if the section was not
// detected.
func (d *ParsedDocument) GetSection(section ResumeSection) *SectionGroup {
	for i := range d.GroupedSections {
		if d.GroupedSections[i].Section == section {
			return &d.GroupedSections[i]
		}
	}
	return nil
}

// GetSectionText returns the combined text for a section, or "" if absent.
func (d *ParsedDocument) GetSectionText(section ResumeSection) string {
	if g := d.GetSection(section); g != nil {
		return g.CombinedText()
	}
	return ""
}

// AddWarning appends a non-fatal parsing issue.
func (d *ParsedDocument) AddWarning(msg string) {
	d.ParsingWarnings = append(d.ParsingWarnings, msg)
}
