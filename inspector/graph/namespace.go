package graph

import (
	"strings"

	"github.com/viant/phpgraph/inspector/symbol"
)

// Namespace represents a namespace with its declared elements and child namespaces
type Namespace struct {
	FQSEN      string // Fully qualified name, root namespace is \
	Name       string // Last segment, empty for root
	Classes    Registry[*Class]
	Interfaces Registry[*Interface]
	Traits     Registry[*Trait]
	Functions  Registry[*Function]
	Constants  Registry[*Constant]
	Children   []*Namespace

	childMap map[string]int // Map of children for quick lookup
}

// NewNamespace creates a namespace
func NewNamespace(fqsen string) *Namespace {
	fqsen = symbol.FQSEN(fqsen)
	return &Namespace{
		FQSEN: fqsen,
		Name:  symbol.LastSegment(strings.TrimPrefix(fqsen, symbol.Separator)),
	}
}

func (n *Namespace) FullyQualifiedName() string { return n.FQSEN }

// AddChild adds a child namespace, returns existing child with the same name if any
func (n *Namespace) AddChild(child *Namespace) *Namespace {
	if existing := n.LookupChild(child.FQSEN); existing != nil {
		return existing
	}
	if n.childMap == nil {
		n.childMap = make(map[string]int)
	}
	n.Children = append(n.Children, child)
	n.childMap[child.FQSEN] = len(n.Children) - 1
	return child
}

// LookupChild retrieves a direct child by fully qualified name
func (n *Namespace) LookupChild(fqsen string) *Namespace {
	if n.childMap == nil {
		return nil
	}
	if idx, ok := n.childMap[fqsen]; ok && idx < len(n.Children) {
		return n.Children[idx]
	}
	return nil
}

// IsEmpty returns true if namespace declares nothing and has no children
func (n *Namespace) IsEmpty() bool {
	return n.Classes.Len() == 0 && n.Interfaces.Len() == 0 && n.Traits.Len() == 0 &&
		n.Functions.Len() == 0 && n.Constants.Len() == 0 && len(n.Children) == 0
}

// Walk visits namespaces in pre-order, children in their given order; returning false stops the walk
func (n *Namespace) Walk(visit func(ns *Namespace) bool) {
	stack := []*Namespace{n}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if current == nil {
			continue
		}
		if !visit(current) {
			return
		}
		for i := len(current.Children) - 1; i >= 0; i-- {
			stack = append(stack, current.Children[i])
		}
	}
}

// Counts holds number of declared elements in a namespace tree
type Counts struct {
	Namespaces int
	Classes    int
	Interfaces int
	Traits     int
	Functions  int
	Constants  int
}

// Count returns element counts for the whole tree
func (n *Namespace) Count() Counts {
	var result Counts
	n.Walk(func(ns *Namespace) bool {
		result.Namespaces++
		result.Classes += ns.Classes.Len()
		result.Interfaces += ns.Interfaces.Len()
		result.Traits += ns.Traits.Len()
		result.Functions += ns.Functions.Len()
		result.Constants += ns.Constants.Len()
		return true
	})
	return result
}
