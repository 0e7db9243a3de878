package graph

// Class represents a class descriptor
type Class struct {
	FQSEN      string // Fully qualified name, e.g. \App\Model\User
	Name       string // Short name
	Abstract   bool
	Final      bool
	Parent     *Ref   // Extended class, nil if none
	Interfaces []*Ref // Implemented interfaces
	Traits     []*Ref // Used traits
	Location   *Location
}

func (c *Class) FullyQualifiedName() string { return c.FQSEN }

// Interface represents an interface descriptor, an interface may extend many interfaces
type Interface struct {
	FQSEN    string
	Name     string
	Parents  []*Ref
	Location *Location
}

func (i *Interface) FullyQualifiedName() string { return i.FQSEN }

// Trait represents a trait descriptor
type Trait struct {
	FQSEN    string
	Name     string
	Traits   []*Ref
	Location *Location
}

func (t *Trait) FullyQualifiedName() string { return t.FQSEN }

// Function represents a namespace level function, FQSEN ends with ()
type Function struct {
	FQSEN    string
	Name     string
	Location *Location
}

func (f *Function) FullyQualifiedName() string { return f.FQSEN }

// Constant represents a namespace level constant
type Constant struct {
	FQSEN    string
	Name     string
	Value    string
	Location *Location
}

func (c *Constant) FullyQualifiedName() string { return c.FQSEN }

// Location represents a declaration position
type Location struct {
	Path string
	Line int
}
