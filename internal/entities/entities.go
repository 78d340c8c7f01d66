// Package entities mines candidate structured fields from resume text with a
// regex and keyword pattern library. It runs independently of section
// grouping and serves as a cross-check / pre-population layer, not the system
// of record.
package entities

import (
	"regexp"
	"strings"
)

// Kind names an entity category in extraction results.
type Kind string

// Entity kinds
const (
	KindEmail               Kind = "email"
	KindPhone               Kind = "phone"
	KindLinkedIn            Kind = "linkedin"
	KindGitHub              Kind = "github"
	KindURL                 Kind = "url"
	KindDegree              Kind = "degree"
	KindUniversity          Kind = "university"
	KindGPA                 Kind = "gpa"
	KindProgrammingLanguage Kind = "programming_language"
	KindFramework           Kind = "framework"
	KindDatabase            Kind = "database"
	KindCloudPlatform       Kind = "cloud_platform"
	KindCertification       Kind = "certification"
	KindLanguage            Kind = "language_proficiency"
	KindYearsExperience     Kind = "years_experience"
	KindSalary              Kind = "salary"
	KindLocation            Kind = "location"
)

var kindPatterns = map[Kind]*regexp.Regexp{
	KindEmail:    regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	KindPhone:    regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	KindLinkedIn: regexp.MustCompile(`(?i)linkedin\.com/(?:in|pub)/[\w-]+`),
	KindGitHub:   regexp.MustCompile(`(?i)github\.com/[\w-]+`),
	KindURL:      regexp.MustCompile(`https?://[\w.-]+(?:/[\w./-]*)?`),
	KindDegree: regexp.MustCompile(
		`(?i)\b(?:Bachelor|Master|PhD|B\.S\.|M\.S\.|B\.A\.|M\.A\.|MBA|Ph\.D\.|Associate)\b[^,\n]*?(?:in|of)\s+[A-Za-z ]+`),
	KindUniversity: regexp.MustCompile(
		`\b(?:University|College|Institute|School)\s+of\s+[A-Z][A-Za-z ]*|\b[A-Z][A-Za-z ]*\s(?:University|College|Institute)\b`),
	KindGPA: regexp.MustCompile(`(?i)\bGPA:?\s*(\d\.\d{1,2})\b`),
	KindProgrammingLanguage: regexp.MustCompile(
		`\b(?:Python|Java|JavaScript|TypeScript|C\+\+|C#|Ruby|PHP|Go|Rust|Swift|Kotlin|Scala|R|MATLAB)\b`),
	KindFramework: regexp.MustCompile(
		`\b(?:React|Angular|Vue|Django|Flask|Spring|Express|Laravel|Rails|ASP\.NET)\b`),
	KindDatabase: regexp.MustCompile(
		`\b(?:MySQL|PostgreSQL|MongoDB|Redis|Oracle|SQLite|Cassandra|DynamoDB)\b`),
	KindCloudPlatform: regexp.MustCompile(
		`\b(?:AWS|Azure|GCP|Google Cloud|Heroku|DigitalOcean|Vercel)\b`),
	KindCertification: regexp.MustCompile(
		`(?i)\b(?:AWS|Azure|Google|Oracle|Microsoft|Cisco|CompTIA|PMP|Scrum Master|CISSP)\b[^,\n]*?(?:Certified|Certification)`),
	KindLanguage: regexp.MustCompile(
		`(?i)\b(?:English|Spanish|French|German|Chinese|Japanese|Korean|Hindi|Arabic|Portuguese|Russian|Italian)\b\s*[-:–]\s*(?:Native|Fluent|Advanced|Intermediate|Basic|Professional|Conversational)\b`),
	KindYearsExperience: regexp.MustCompile(`(?i)\b(\d+)\+?\s*years?\s*(?:of\s*)?experience\b`),
	KindSalary:          regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?[kK]?`),
	KindLocation:        regexp.MustCompile(`\b[A-Z][a-z]+,\s*(?:[A-Z]{2}|[A-Z][a-z]+)\b`),
}

// Extract runs every entity pattern over the text and returns the matches per
// kind, de-duplicated within each kind while preserving first-match order.
// Kinds without matches map to empty slices, never nil lookups or errors.
func Extract(text string) map[Kind][]string {
	results := make(map[Kind][]string, len(kindPatterns))
	for kind, pattern := range kindPatterns {
		matches := pattern.FindAllString(text, -1)
		deduped := make([]string, 0, len(matches))
		seen := make(map[string]bool, len(matches))
		for _, m := range matches {
			m = strings.TrimSpace(m)
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			deduped = append(deduped, m)
		}
		results[kind] = deduped
	}
	return results
}

// ExtractKind runs a single kind's pattern over the text.
func ExtractKind(text string, kind Kind) []string {
	pattern, ok := kindPatterns[kind]
	if !ok {
		return []string{}
	}
	matches := pattern.FindAllString(text, -1)
	deduped := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		deduped = append(deduped, m)
	}
	return deduped
}
