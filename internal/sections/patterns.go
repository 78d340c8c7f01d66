package sections

import (
	"regexp"

	"github.com/jonathan/resume-parser/internal/types"
)

// headerPatterns map canonical resume-section vocabulary to the sections they
// open. Matched against short header-like fragments only; built once at init.
var headerPatterns = map[types.ResumeSection][]*regexp.Regexp{
	types.SectionContact: {
		regexp.MustCompile(`(?i)^contact\s*(information|info|details)?$`),
		regexp.MustCompile(`(?i)^personal\s*(information|info|details)$`),
		regexp.MustCompile(`(?i)^contact\s*me$`),
	},
	types.SectionSummary: {
		regexp.MustCompile(`(?i)^(professional\s*|career\s*|executive\s*)?summary$`),
		regexp.MustCompile(`(?i)^profile$`),
		regexp.MustCompile(`(?i)^overview$`),
		regexp.MustCompile(`(?i)^about\s*(me)?$`),
	},
	types.SectionObjective: {
		regexp.MustCompile(`(?i)^(career\s*)?objective$`),
		regexp.MustCompile(`(?i)^(career\s*)?goals?$`),
	},
	types.SectionSkills: {
		regexp.MustCompile(`(?i)^(technical\s*)?skills$`),
		regexp.MustCompile(`(?i)^(core\s*)?competencies$`),
		regexp.MustCompile(`(?i)^expertise$`),
		regexp.MustCompile(`(?i)^technologies$`),
		regexp.MustCompile(`(?i)^programming\s*languages$`),
		regexp.MustCompile(`(?i)^tools\s*(and\s*technologies)?$`),
	},
	types.SectionExperience: {
		regexp.MustCompile(`(?i)^(work\s*|professional\s*)?experience$`),
		regexp.MustCompile(`(?i)^(employment|career|work)\s*history$`),
		regexp.MustCompile(`(?i)^professional\s*background$`),
	},
	types.SectionEducation: {
		regexp.MustCompile(`(?i)^education$`),
		regexp.MustCompile(`(?i)^(academic|educational)\s*background$`),
		regexp.MustCompile(`(?i)^(academic\s*)?qualifications$`),
	},
	types.SectionCertifications: {
		regexp.MustCompile(`(?i)^certifications?$`),
		regexp.MustCompile(`(?i)^certificates?$`),
		regexp.MustCompile(`(?i)^(professional\s*)?certifications?$`),
		regexp.MustCompile(`(?i)^licenses?\s*(and\s*certifications?)?$`),
	},
	types.SectionProjects: {
		regexp.MustCompile(`(?i)^(key\s*|notable\s*|selected\s*)?projects?$`),
		regexp.MustCompile(`(?i)^portfolio$`),
	},
	types.SectionAwards: {
		regexp.MustCompile(`(?i)^awards?$`),
		regexp.MustCompile(`(?i)^honors?\s*(and\s*awards?)?$`),
		regexp.MustCompile(`(?i)^achievements?$`),
		regexp.MustCompile(`(?i)^recognition$`),
	},
	types.SectionReferences: {
		regexp.MustCompile(`(?i)^(professional\s*)?references?$`),
		regexp.MustCompile(`(?i)^references?\s*available\s*upon\s*request$`),
	},
}

// contactPatterns identify contact details embedded anywhere in the document.
var contactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),                           // email
	regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),                                                 // US phone
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),                                                   // US phone (parens)
	regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{4,14}`),                                                      // international phone
	regexp.MustCompile(`(?i)\b\d{1,5}\s+\w+\s+(street|st|avenue|ave|road|rd|drive|dr|lane|ln|blvd)\b`), // street address
	regexp.MustCompile(`(?i)\b(linkedin\.com/in/|github\.com/|twitter\.com/)`),                          // social profiles
}
