package classify

import "regexp"

// Pattern tables are built once at package init and are read-only afterwards,
// so concurrent classification needs no locking.

var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*[•·▪▫◦‣⁃]\s+`), // unicode bullets
	regexp.MustCompile(`^\s*[-*+]\s+`),     // markdown bullets
	regexp.MustCompile(`^[a-z]\)\s+`),      // lettered lists
	regexp.MustCompile(`^[0-9]+\.\s+`),     // numbered lists
	regexp.MustCompile(`^e\s+`),            // OCR artifact for "•"
	regexp.MustCompile(`^¢\s+`),            // OCR artifact
}

var dateRangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}\s*[-–]\s*\d{4}`),
	regexp.MustCompile(`(?i)\d{4}\s*[-–]\s*(present|current)`),
	regexp.MustCompile(`(?i)[A-Za-z]+\.?\s+\d{4}\s*[-–]\s*[A-Za-z]+\.?\s+\d{4}`),
}

var companyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`),     // two capitalized words
	regexp.MustCompile(`^[A-Z][A-Z\s&]+$`),               // all caps
	regexp.MustCompile(`\b(Inc|Corp|LLC|Ltd|Co)\.?\s*$`), // legal entity suffix
}

var jobTitlePattern = regexp.MustCompile(
	`(?i)\b(?:(?:senior|lead|principal|staff|chief)\s+)?[a-z\s]*` +
		`(?:engineer|developer|manager|director|analyst|consultant|specialist|coordinator|architect|designer|administrator|supervisor|programmer)\b`)

// contentIndicators are words that mark descriptive prose; short text
// containing one is never treated as a section header.
var contentIndicators = map[string]struct{}{
	"developed": {}, "implemented": {}, "managed": {}, "created": {},
	"designed": {}, "worked": {}, "used": {}, "utilized": {}, "skilled": {},
	"proficient": {}, "responsible": {}, "involved": {}, "participated": {},
	"collaborated": {}, "led": {}, "maintained": {}, "configured": {},
	"deployed": {}, "integrated": {}, "optimized": {}, "experienced": {},
	"strong": {}, "demonstrated": {}, "extensive": {}, "delivered": {},
	"directed": {}, "served": {}, "supported": {}, "handled": {},
	"engineered": {}, "facilitated": {}, "redesigned": {}, "improved": {},
	"achieved": {}, "leveraged": {},
}

// stopWords signal sentence-like text; standalone header candidates contain
// none of them.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {},
}
