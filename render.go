package texgen

import (
	"fmt"
	"io"
)

// indent is added to the prefix for every nesting level
const indent = "  "

// Render writes the tree rooted at node to w, starting at zero indentation.
// Rendering only reads the tree, the same tree can be rendered any number of
// times with identical output.
func Render(w io.Writer, node *Node) error {
	return render(w, node, "")
}

func render(w io.Writer, node *Node, prefix string) error {
	if err := renderBegin(w, node, prefix); err != nil {
		return err
	}

	for _, child := range node.Children {
		if err := render(w, child, prefix+indent); err != nil {
			return err
		}
	}

	return renderEnd(w, node, prefix)
}

func renderBegin(w io.Writer, node *Node, prefix string) error {
	switch node.Kind {
	case TextKind:
		_, err := fmt.Fprint(w, prefix, node.Data, "\n")
		return err
	case CommandKind:
		_, err := fmt.Fprint(w, prefix, "\\", node.Name, Options(node.Flags), "{", node.Data, "}\n")
		return err
	case ContainerKind:
		_, err := fmt.Fprint(w, prefix, "\\begin{", node.Name, "}", node.Attributes.String(), "\n")
		return err
	case ItemKind:
		_, err := fmt.Fprint(w, prefix, "\\item\n")
		return err
	default:
		return nil
	}
}

// renderEnd writes the closing line for containers, every other kind renders
// completely in renderBegin. Items have no end line.
func renderEnd(w io.Writer, node *Node, prefix string) error {
	if node.Kind != ContainerKind {
		return nil
	}

	_, err := fmt.Fprint(w, prefix, "\\end{", node.Name, "}\n")
	return err
}
