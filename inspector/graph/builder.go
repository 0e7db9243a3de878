package graph

import (
	"strings"

	"github.com/viant/phpgraph/inspector/node"
	"github.com/viant/phpgraph/inspector/symbol"
)

// Builder assembles a namespace tree from namespace declarations.
// References are collected as unresolved names and linked to descriptors on Build.
type Builder struct {
	root       *Namespace
	classes    map[string]*Class
	interfaces map[string]*Interface
	traits     map[string]*Trait
}

// NewBuilder creates a builder with an empty root namespace
func NewBuilder() *Builder {
	return &Builder{
		root:       NewNamespace(symbol.Separator),
		classes:    make(map[string]*Class),
		interfaces: make(map[string]*Interface),
		traits:     make(map[string]*Trait),
	}
}

// Add registers declarations of a namespace
func (b *Builder) Add(ns *node.Namespace) {
	if ns == nil {
		return
	}
	ctx := symbol.Resolve(ns)
	if !ns.HasName() {
		// global code still imports names
		ctx = symbol.Resolve(&node.Namespace{Name: symbol.Separator, Stmts: ns.Stmts})
	}
	target := b.Namespace(ctx.Namespace())
	for _, stmt := range ns.Stmts {
		switch actual := stmt.(type) {
		case *node.Class:
			class := &Class{
				FQSEN:      symbol.FQSEN(ctx.Namespace(), actual.Name),
				Name:       actual.Name,
				Abstract:   actual.Abstract,
				Final:      actual.Final,
				Interfaces: references(ctx, actual.Implements),
				Traits:     references(ctx, actual.Uses),
				Location:   location(ns, actual.Line),
			}
			if actual.Extends != "" {
				class.Parent = reference(ctx, actual.Extends)
			}
			target.Classes.Add(class)
			b.classes[class.FQSEN] = class
		case *node.Interface:
			iface := &Interface{
				FQSEN:    symbol.FQSEN(ctx.Namespace(), actual.Name),
				Name:     actual.Name,
				Parents:  references(ctx, actual.Extends),
				Location: location(ns, actual.Line),
			}
			target.Interfaces.Add(iface)
			b.interfaces[iface.FQSEN] = iface
		case *node.Trait:
			trait := &Trait{
				FQSEN:    symbol.FQSEN(ctx.Namespace(), actual.Name),
				Name:     actual.Name,
				Traits:   references(ctx, actual.Uses),
				Location: location(ns, actual.Line),
			}
			target.Traits.Add(trait)
			b.traits[trait.FQSEN] = trait
		case *node.Function:
			target.Functions.Add(&Function{
				FQSEN:    symbol.FQSEN(ctx.Namespace(), actual.Name) + "()",
				Name:     actual.Name,
				Location: location(ns, actual.Line),
			})
		case *node.Const:
			for i, name := range actual.Names {
				constant := &Constant{
					FQSEN:    symbol.FQSEN(ctx.Namespace(), name),
					Name:     name,
					Location: location(ns, actual.Line),
				}
				if i < len(actual.Values) {
					constant.Value = actual.Values[i]
				}
				target.Constants.Add(constant)
			}
		}
	}
}

// Namespace returns the namespace for a name, creating missing namespaces along the path
func (b *Builder) Namespace(name string) *Namespace {
	current := b.root
	fqsen := ""
	for _, segment := range strings.Split(symbol.TrimSeparator(name), symbol.Separator) {
		if segment == "" {
			continue
		}
		fqsen += symbol.Separator + segment
		current = current.AddChild(NewNamespace(fqsen))
	}
	return current
}

// Build links references to descriptors and returns the root namespace
func (b *Builder) Build() *Namespace {
	b.root.Walk(func(ns *Namespace) bool {
		for _, class := range ns.Classes.Items() {
			if class.Parent != nil {
				class.Parent = link(class.Parent, b.classes)
			}
			linkAll(class.Interfaces, b.interfaces)
			linkAll(class.Traits, b.traits)
		}
		for _, iface := range ns.Interfaces.Items() {
			linkAll(iface.Parents, b.interfaces)
		}
		for _, trait := range ns.Traits.Items() {
			linkAll(trait.Traits, b.traits)
		}
		return true
	})
	return b.root
}

func link[T Descriptor](ref *Ref, index map[string]T) *Ref {
	if descriptor, ok := index[ref.Name()]; ok {
		return Resolved(descriptor)
	}
	return ref
}

func linkAll[T Descriptor](refs []*Ref, index map[string]T) {
	for i, ref := range refs {
		refs[i] = link(ref, index)
	}
}

func reference(ctx *symbol.Context, name string) *Ref {
	expanded := ctx.Expand(name)
	if symbol.IsKeyword(expanded) {
		return Unresolved(expanded)
	}
	return Unresolved(symbol.FQSEN(expanded))
}

func references(ctx *symbol.Context, names []string) []*Ref {
	var result []*Ref
	for _, name := range names {
		if name == "" {
			continue
		}
		result = append(result, reference(ctx, name))
	}
	return result
}

func location(ns *node.Namespace, line int) *Location {
	if ns.Path == "" && line == 0 {
		return nil
	}
	return &Location{Path: ns.Path, Line: line}
}
