package document

import "strings"

// Handle identifies the remote document for the lifetime of one conversion.
// It is built once per conversion and passed by value into every gateway
// call; the session itself never carries document identity.
type Handle struct {
	Filename string
	Title    string
	Author   string
}

// Kind discriminates the structural units produced by classification.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindListItem  Kind = "list_item"
	KindParagraph Kind = "paragraph"
)

// Unit is one classified structural element of the input text.
// Level is meaningful only for KindHeading.
type Unit struct {
	Kind  Kind
	Level int
	Text  string
}

// Paragraph styles understood by the word service.
const (
	StyleNormal = "Normal"
	StyleBullet = "ListBullet"
)

// NormalizeFilename appends the .docx suffix unless the name already ends
// with it. The check is case-insensitive; the original spelling is kept.
func NormalizeFilename(name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".docx") {
		return name
	}
	return name + ".docx"
}
