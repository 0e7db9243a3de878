package node

// Statement types
const (
	TypeNamespace = "namespace_definition"
	TypeUse       = "namespace_use_declaration"
	TypeGroupUse  = "namespace_use_group"
	TypeClass     = "class_declaration"
	TypeInterface = "interface_declaration"
	TypeTrait     = "trait_declaration"
	TypeFunction  = "function_definition"
	TypeConst     = "const_declaration"
)

// Stmt represents a statement declared inside a namespace.
// Only import statements are interpreted by the symbol resolver, any other
// implementation passes through untouched.
type Stmt interface {
	Type() string
}

// Namespace represents a namespace declaration with its statements
type Namespace struct {
	Name  string // Namespace name, may carry a leading separator; empty for the global namespace
	Stmts []Stmt // Statements in declaration order
	Path  string // Source file path
}

func (n *Namespace) Type() string { return TypeNamespace }

// HasName returns true if namespace was declared with a name
func (n *Namespace) HasName() bool {
	return n != nil && n.Name != ""
}

// Append adds statements to the namespace
func (n *Namespace) Append(stmts ...Stmt) {
	n.Stmts = append(n.Stmts, stmts...)
}

// Opaque represents a statement the inspector does not model
type Opaque struct {
	Kind string
	Text string
}

func (o *Opaque) Type() string { return o.Kind }
