package node

// UseKind indicates what an import refers to
type UseKind int

const (
	UseUnknown UseKind = iota
	UseNormal
	UseFunction
	UseConstant
)

func (k UseKind) String() string {
	switch k {
	case UseNormal:
		return "normal"
	case UseFunction:
		return "function"
	case UseConstant:
		return "const"
	}
	return "unknown"
}

// UseItem represents a single imported name with optional alias
type UseItem struct {
	Name  string
	Alias string
	Kind  UseKind
}

// Use represents an import statement: use A\B, C as D;
type Use struct {
	Kind UseKind
	Uses []*UseItem
}

func (u *Use) Type() string { return TypeUse }

// GroupUse represents a grouped import statement: use A\{B, C as D};
type GroupUse struct {
	Kind   UseKind
	Prefix string
	Uses   []*UseItem
}

func (g *GroupUse) Type() string { return TypeGroupUse }

// NewUse creates an import statement with a single item
func NewUse(kind UseKind, name string, alias string) *Use {
	return &Use{Kind: kind, Uses: []*UseItem{{Name: name, Alias: alias, Kind: kind}}}
}
