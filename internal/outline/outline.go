// Package outline builds a heading tree from conversion inputs and outputs:
// from Markdown text, the structure a conversion will produce; from a .docx
// file, the structure a finished document actually has.
package outline

// Tree is the root of a document outline.
type Tree struct {
	Title    string  `json:"title"`
	Sections []*Node `json:"sections,omitempty"`
}

// Node is one heading with its body text and subsections.
type Node struct {
	Title    string  `json:"title,omitempty"`
	Text     string  `json:"text,omitempty"`
	Sections []*Node `json:"sections,omitempty"`
}

// builder tracks the current heading nesting while walking a document in
// reading order. Headings attach to the nearest ancestor with a lower level;
// body text accumulates on whatever section is open.
type builder struct {
	root  *Node
	stack []stackEntry
	text  []string
}

type stackEntry struct {
	node  *Node
	level int
}

func newBuilder(title string) *builder {
	root := &Node{Title: title}
	return &builder{
		root:  root,
		stack: []stackEntry{{node: root, level: 0}},
	}
}

func (b *builder) heading(level int, title string) {
	b.flushText()
	node := &Node{Title: title}
	for len(b.stack) > 1 && b.stack[len(b.stack)-1].level >= level {
		b.stack = b.stack[:len(b.stack)-1]
	}
	parent := b.stack[len(b.stack)-1].node
	parent.Sections = append(parent.Sections, node)
	b.stack = append(b.stack, stackEntry{node: node, level: level})
}

func (b *builder) body(text string) {
	if text != "" {
		b.text = append(b.text, text)
	}
}

func (b *builder) flushText() {
	if len(b.text) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1].node
	for _, t := range b.text {
		if top.Text != "" {
			top.Text += "\n\n" + t
		} else {
			top.Text = t
		}
	}
	b.text = nil
}

func (b *builder) tree() *Tree {
	b.flushText()
	tree := &Tree{Title: b.root.Title, Sections: b.root.Sections}
	// A headingless document still gets one section holding its text.
	if len(tree.Sections) == 0 && b.root.Text != "" {
		tree.Sections = []*Node{{Text: b.root.Text}}
	}
	return tree
}
