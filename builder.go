package texgen

// Element scopes tree construction to a single container node: every builder
// call on an Element attaches its result as a child of that node. An init
// callback receives a fresh Element for the node it populates and holds no
// reference to enclosing elements, so nested callbacks cannot attach children
// to the wrong node.
type Element struct {
	node *Node
}

// attach finishes construction of a node: options are applied through Set
// (duplicate keys overwrite in place) and the node is appended to the
// receiver's children. The node is returned so call sites can extend it.
func (e *Element) attach(node *Node, attrs []Attribute) *Node {
	for _, attr := range attrs {
		node.Attributes = node.Attributes.Set(attr.Key, attr.Value)
	}

	e.node.Children = append(e.node.Children, node)
	return node
}

// Text appends a literal text line.
func (e *Element) Text(text string) *Node {
	return e.attach(&Node{Kind: TextKind, Data: text}, nil)
}

// Command appends a single-line command with one parameter and optional bare
// flags, rendered as \name[flags]{parameter}.
func (e *Element) Command(name, parameter string, flags ...string) *Node {
	return e.attach(&Node{Kind: CommandKind, Name: name, Data: parameter, Flags: flags}, nil)
}

// DocumentClass appends a \documentclass command.
func (e *Element) DocumentClass(class string, flags ...string) *Node {
	return e.Command("documentclass", class, flags...)
}

// UsePackage appends a \usepackage command.
func (e *Element) UsePackage(name string, flags ...string) *Node {
	return e.Command("usepackage", name, flags...)
}

// Environment appends a container with the given name, populated by init.
func (e *Element) Environment(name string, init func(*Element), attrs ...Attribute) *Node {
	node := &Node{Kind: ContainerKind, Name: name}
	if init != nil {
		init(&Element{node: node})
	}

	return e.attach(node, attrs)
}

// Frame appends a frame environment with a \frametitle command placed before
// anything init adds.
func (e *Element) Frame(title string, init func(*Element), attrs ...Attribute) *Node {
	node := &Node{Kind: ContainerKind, Name: "frame"}
	node.Children = append(node.Children, &Node{Kind: CommandKind, Name: "frametitle", Data: title})

	if init != nil {
		init(&Element{node: node})
	}

	return e.attach(node, attrs)
}

// Itemize appends an itemize environment. The init callback receives a List,
// so it can only add items.
func (e *Element) Itemize(init func(*List), attrs ...Attribute) *Node {
	return e.list("itemize", init, attrs)
}

// Enumerate appends an enumerate environment. The init callback receives a
// List, so it can only add items.
func (e *Element) Enumerate(init func(*List), attrs ...Attribute) *Node {
	return e.list("enumerate", init, attrs)
}

func (e *Element) list(name string, init func(*List), attrs []Attribute) *Node {
	node := &Node{Kind: ContainerKind, Name: name}
	if init != nil {
		init(&List{node: node})
	}

	return e.attach(node, attrs)
}

// Math appends a math environment.
func (e *Element) Math(init func(*Element)) *Node {
	return e.Environment("math", init)
}

// Center appends a center environment.
func (e *Element) Center(init func(*Element)) *Node {
	return e.Environment("center", init)
}

// FlushLeft appends a flushleft environment.
func (e *Element) FlushLeft(init func(*Element)) *Node {
	return e.Environment("flushleft", init)
}

// FlushRight appends a flushright environment.
func (e *Element) FlushRight(init func(*Element)) *Node {
	return e.Environment("flushright", init)
}

// List scopes construction inside itemize and enumerate environments to items.
type List struct {
	node *Node
}

// Item appends an \item entry, populated by init. Items render without an
// end line, their content is indented one level below the \item line.
func (l *List) Item(init func(*Element)) *Node {
	node := &Node{Kind: ItemKind, Name: "item"}
	if init != nil {
		init(&Element{node: node})
	}

	l.node.Children = append(l.node.Children, node)
	return node
}
