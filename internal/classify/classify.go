// Package classify maps lines of Markdown-ish input to structural units.
//
// Only the flat constructs the word service can express are recognized:
// headings, list items, and plain paragraphs. Tables, code blocks, inline
// emphasis and nested lists all fall through to the paragraph default.
package classify

import (
	"strings"

	"github.com/dgallion1/wordbridge/internal/document"
)

// Classify maps one line of input to a structural unit. Blank and
// whitespace-only lines yield no unit. Heading detection wins over list
// detection, which wins over the paragraph default; exactly one branch
// matches any non-blank line.
func Classify(line string) (document.Unit, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return document.Unit{}, false
	}

	if strings.HasPrefix(line, "#") {
		level := len(line) - len(strings.TrimLeft(line, "#"))
		rest := line[level:]
		// A bare run of '#' is still a heading, with empty text.
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return document.Unit{
				Kind:  document.KindHeading,
				Level: level,
				Text:  strings.TrimSpace(rest),
			}, true
		}
	}

	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return document.Unit{
			Kind: document.KindListItem,
			Text: strings.TrimSpace(line[2:]),
		}, true
	}

	return document.Unit{
		Kind: document.KindParagraph,
		Text: line,
	}, true
}
