package outline

import (
	"strings"
	"testing"
)

func TestFromMarkdown_HeadingHierarchy(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.

## Section B

Section B content.
`
	tree, err := FromMarkdown([]byte(input), "doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "doc" {
		t.Errorf("expected title %q, got %q", "doc", tree.Title)
	}

	// Top-level: one h1 ("Title").
	if len(tree.Sections) != 1 {
		t.Fatalf("expected 1 top-level section (h1), got %d", len(tree.Sections))
	}

	h1 := tree.Sections[0]
	if h1.Title != "Title" {
		t.Errorf("expected h1 title %q, got %q", "Title", h1.Title)
	}
	if !strings.Contains(h1.Text, "Intro text.") {
		t.Errorf("expected h1 text to contain %q, got %q", "Intro text.", h1.Text)
	}

	// h1 has two h2 children: "Section A" and "Section B".
	if len(h1.Sections) != 2 {
		t.Fatalf("expected 2 h2 sections, got %d", len(h1.Sections))
	}

	secA := h1.Sections[0]
	if secA.Title != "Section A" {
		t.Errorf("expected %q, got %q", "Section A", secA.Title)
	}
	if !strings.Contains(secA.Text, "Section A content.") {
		t.Errorf("expected section A text to contain %q, got %q", "Section A content.", secA.Text)
	}
	if len(secA.Sections) != 1 {
		t.Fatalf("expected 1 h3 section under Section A, got %d", len(secA.Sections))
	}
	if secA.Sections[0].Title != "Subsection A1" {
		t.Errorf("expected %q, got %q", "Subsection A1", secA.Sections[0].Title)
	}

	if h1.Sections[1].Title != "Section B" {
		t.Errorf("expected %q, got %q", "Section B", h1.Sections[1].Title)
	}
}

func TestFromMarkdown_NoHeadings(t *testing.T) {
	input := `Just some plain text.

Another paragraph here.`

	tree, err := FromMarkdown([]byte(input), "plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No headings: all text is collected into a single section.
	if len(tree.Sections) != 1 {
		t.Fatalf("expected 1 section for headingless markdown, got %d", len(tree.Sections))
	}
	text := tree.Sections[0].Text
	if !strings.Contains(text, "Just some plain text.") {
		t.Errorf("expected text to contain first paragraph, got %q", text)
	}
	if !strings.Contains(text, "Another paragraph here.") {
		t.Errorf("expected text to contain second paragraph, got %q", text)
	}
}

func TestFromMarkdown_ListsKeptAsBody(t *testing.T) {
	input := "# Features\n\n- fast\n- small\n"
	tree, err := FromMarkdown([]byte(input), "doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(tree.Sections))
	}
	text := tree.Sections[0].Text
	if !strings.Contains(text, "fast") || !strings.Contains(text, "small") {
		t.Errorf("expected list items in section text, got %q", text)
	}
}

func TestFromMarkdown_EmptyInput(t *testing.T) {
	tree, err := FromMarkdown(nil, "empty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Sections) != 0 {
		t.Errorf("expected 0 sections for empty input, got %d", len(tree.Sections))
	}
}
