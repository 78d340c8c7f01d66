package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	fallbackBulletPrefix = regexp.MustCompile(`^[•◦▪\-\*]\s+`)
	fallbackEmail        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	fallbackPhone        = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

var sectionKeywords = map[string]bool{
	"experience": true, "education": true, "skills": true, "summary": true,
	"objective": true, "projects": true, "certifications": true, "awards": true,
	"references": true, "contact": true,
}

// fallbackExtract recovers fragments without layout analysis. Each format gets
// a best-effort path; every path that runs leaves a warning so the caller can
// tell degraded output from full extraction. A document no path can read yields
// an empty fragment list with a warning, never an error.
func fallbackExtract(data []byte, ext string) ([]types.Fragment, []string) {
	var fragments []types.Fragment
	var warnings []string
	var err error

	switch ext {
	case ".txt":
		text, name := decodeText(data)
		fragments = lineFragments(text, 1)
		warnings = append(warnings, fmt.Sprintf("Used plain-text line extraction (%s decoding)", name))
	case ".pdf":
		fragments, err = pdfFragments(data)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("PDF text extraction failed: %v", err))
		} else {
			warnings = append(warnings, "Used plain PDF text extraction without layout analysis")
		}
	case ".docx":
		fragments, err = docxFragments(data)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("DOCX paragraph extraction failed: %v", err))
		} else {
			warnings = append(warnings, "Used DOCX paragraph extraction without layout analysis")
		}
	case ".html", ".htm":
		fragments, err = htmlFragments(data)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("HTML text extraction failed: %v", err))
		} else {
			warnings = append(warnings, "Used HTML text extraction without layout analysis")
		}
	default:
		text, name := decodeText(data)
		fragments = lineFragments(text, 1)
		warnings = append(warnings, fmt.Sprintf("Unrecognized format, used raw text decoding (%s)", name))
	}

	if len(fragments) > 0 {
		return fragments, warnings
	}

	// Last resort: one synthetic fragment carrying whatever decodes.
	text, _ := decodeText(data)
	text = strings.TrimSpace(text)
	if text == "" {
		warnings = append(warnings, "Document contains no decodable text")
		return nil, warnings
	}
	warnings = append(warnings, "Produced a single synthetic fragment; document structure unavailable")
	return []types.Fragment{{
		Text:     text,
		Category: types.CategoryNarrativeText,
		Page:     1,
	}}, warnings
}

// decodeText decodes bytes as utf-8, then cp1252, then latin-1, returning the
// decoded text and the name of the encoding that applied. cp1252 is tried
// before latin-1 because its decoder marks the five undefined bytes with
// U+FFFD; latin-1 maps every byte, so it always succeeds.
func decodeText(data []byte) (string, string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil &&
		!strings.ContainsRune(string(decoded), utf8.RuneError) {
		return string(decoded), "cp1252"
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(decoded), "latin-1"
}

// lineFragments splits text into one fragment per non-empty line, guessing a
// category from surface features of each line.
func lineFragments(text string, page int) []types.Fragment {
	var fragments []types.Fragment
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fragments = append(fragments, types.Fragment{
			Text:     line,
			Category: classifyLine(line),
			Page:     page,
		})
	}
	return fragments
}

func classifyLine(line string) types.FragmentCategory {
	switch {
	case fallbackBulletPrefix.MatchString(line):
		return types.CategoryListItem
	case fallbackEmail.MatchString(line):
		return types.CategoryEmailAddress
	case fallbackPhone.MatchString(line) && len(line) < 40:
		return types.CategoryPhoneNumber
	case sectionKeywords[strings.ToLower(strings.TrimSuffix(line, ":"))]:
		return types.CategoryTitle
	case line == strings.ToUpper(line) && len(line) < 40 && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"):
		return types.CategoryTitle
	default:
		return types.CategoryNarrativeText
	}
}

// pdfFragments pulls plain text page by page. The pdf library panics on some
// malformed files, so the whole call runs under a recover guard.
func pdfFragments(data []byte) (fragments []types.Fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("pdf parsing panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		fragments = append(fragments, lineFragments(text, i)...)
	}
	return fragments, nil
}

// docxFragments scans word/document.xml inside the archive and emits one
// fragment per paragraph.
func docxFragments(data []byte) ([]types.Fragment, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening docx archive: %w", err)
	}
	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("archive has no word/document.xml")
	}
	rc, err := doc.Open()
	if err != nil {
		return nil, fmt.Errorf("opening document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var fragments []types.Fragment
	var paragraph strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				paragraph.WriteByte(' ')
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(paragraph.String()); text != "" {
					fragments = append(fragments, types.Fragment{
						Text:     text,
						Category: classifyLine(text),
						Page:     1,
					})
				}
				paragraph.Reset()
			}
		}
	}
	return fragments, nil
}

// htmlFragments extracts visible text, one fragment per rendered line.
func htmlFragments(data []byte) ([]types.Fragment, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return lineFragments(text, 1), nil
}
