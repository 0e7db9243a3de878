package node

// Class represents a class declaration, names are kept as written in the source
type Class struct {
	Name       string
	Abstract   bool
	Final      bool
	Extends    string
	Implements []string
	Uses       []string // Used traits
	Line       int
}

func (c *Class) Type() string { return TypeClass }

// Interface represents an interface declaration
type Interface struct {
	Name    string
	Extends []string
	Line    int
}

func (i *Interface) Type() string { return TypeInterface }

// Trait represents a trait declaration
type Trait struct {
	Name string
	Uses []string
	Line int
}

func (t *Trait) Type() string { return TypeTrait }

// Function represents a namespace level function
type Function struct {
	Name string
	Line int
}

func (f *Function) Type() string { return TypeFunction }

// Const represents a namespace level constant declaration
type Const struct {
	Names  []string
	Values []string
	Line   int
}

func (c *Const) Type() string { return TypeConst }
