package assembly

import (
	"regexp"
	"strings"
)

var (
	excessNewlines   = regexp.MustCompile(`\n{3,}`)
	excessSpaces     = regexp.MustCompile(` {2,}`)
	spaceBeforePunct = regexp.MustCompile(`[ \t]+([.,:;!?])`)
	punctNoSpace     = regexp.MustCompile(`([.,:;!?])([A-Za-z])`)
	headerSpacing    = regexp.MustCompile(`(#+)[ \t]*([^#\n]+)`)
	ocrBullet        = regexp.MustCompile(`(?m)^[ \t]*e[ \t]+`)
	brokenEmail      = regexp.MustCompile(`([A-Za-z0-9._%+-]+)\s*\.\s*([A-Za-z0-9._%+-]+)\s*@\s*([A-Za-z0-9.-]+)\s*\.\s*([A-Za-z]{2,})`)
	pipeSpacing      = regexp.MustCompile(`\s*\|\s*`)
	dateDash         = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(\d{4}|present|current)`)
	openParenSpace   = regexp.MustCompile(`\(\s+`)
	closeParenSpace  = regexp.MustCompile(`\s+\)`)
)

// Normalize applies the final whitespace and markup cleanup pass. The pass is
// idempotent: feeding its output back in yields the same string.
func Normalize(content string) string {
	// Collapse runs of blank lines and spaces
	content = excessNewlines.ReplaceAllString(content, "\n\n")
	content = excessSpaces.ReplaceAllString(content, " ")

	// Punctuation spacing: none before, exactly one after
	content = spaceBeforePunct.ReplaceAllString(content, "$1")
	content = punctNoSpace.ReplaceAllString(content, "$1 $2")

	// Markup delimiter spacing
	content = headerSpacing.ReplaceAllString(content, "$1 $2")

	// OCR misreads "•" as a lone "e" at line start
	content = ocrBullet.ReplaceAllString(content, "• ")

	// Re-join email addresses split by the punctuation pass
	content = brokenEmail.ReplaceAllString(content, "$1.$2@$3.$4")

	content = pipeSpacing.ReplaceAllString(content, " | ")
	content = dateDash.ReplaceAllString(content, "$1 – $2")

	content = excessNewlines.ReplaceAllString(content, "\n\n")
	content = openParenSpace.ReplaceAllString(content, "(")
	content = closeParenSpace.ReplaceAllString(content, ")")

	return strings.TrimSpace(content)
}
