package constants

import "strings"

// FileFormat is the canonical discriminator for uploaded resume documents.
type FileFormat string

// Stable values (logged and surfaced in errors).
const (
	PDF  FileFormat = "PDF"
	DOCX FileFormat = "DOCX"
	TXT  FileFormat = "TXT"
)

// extToFormat maps normalized file extensions to formats. The extension is the
// sole discriminator; file content is never sniffed.
var extToFormat = map[string]FileFormat{
	"pdf":  PDF,
	"docx": DOCX,
	"txt":  TXT,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// MapExtToFormat resolves a file extension to its format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) FileFormat {
	return extToFormat[NormalizeExt(ext)]
}
