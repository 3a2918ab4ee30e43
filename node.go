package texgen

type Kind int

const (
	TextKind Kind = iota
	CommandKind
	ContainerKind
	ItemKind
)

// Node is a single unit of the document tree. Which fields are meaningful
// depends on Kind: text nodes carry Data only, commands carry Name, Data
// (the parameter) and Flags, containers carry Name, Attributes and Children.
// Items are containers without a name or attributes.
type Node struct {
	Kind       Kind
	Name       string
	Data       string
	Flags      []string
	Attributes Attributes
	Children   []*Node
}
