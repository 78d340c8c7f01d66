package extraction

import (
	"path/filepath"
	"strings"
)

var fileTypeNames = map[string]string{
	".pdf":  "PDF Document",
	".docx": "Word Document",
	".doc":  "Word Document (Legacy)",
	".txt":  "Plain Text",
	".html": "HTML Document",
	".htm":  "HTML Document",
	".rtf":  "Rich Text Format",
	".odt":  "OpenDocument Text",
}

// NormalizeExtension lowercases the extension of filename, including the dot.
func NormalizeExtension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// FileTypeName maps an extension to a display name for reporting. Unknown
// extensions come back as "Unknown Format".
func FileTypeName(ext string) string {
	if name, ok := fileTypeNames[strings.ToLower(ext)]; ok {
		return name
	}
	return "Unknown Format"
}
