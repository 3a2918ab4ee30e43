package texgen

import (
	"bytes"
	"io"
)

// Document is the root of the tree, a container named document. It owns the
// whole tree: construction happens inside NewDocument and the tree is fixed
// once NewDocument returns.
type Document struct {
	root *Node
}

// NewDocument builds a document: init populates the root container through
// the scoped builder API.
func NewDocument(init func(*Element)) *Document {
	root := &Node{Kind: ContainerKind, Name: "document"}
	if init != nil {
		init(&Element{node: root})
	}

	return &Document{root: root}
}

// Root returns the root node of the document tree.
func (d *Document) Root() *Node {
	return d.root
}

// Render writes the document to w, root at zero indentation. A sink error is
// returned as is, nothing is retried.
func (d *Document) Render(w io.Writer) error {
	return render(w, d.root, "")
}

// String renders the document to a string.
func (d *Document) String() string {
	buffer := bytes.NewBuffer(nil)
	if err := d.Render(buffer); err != nil {
		return ""
	}

	return buffer.String()
}
