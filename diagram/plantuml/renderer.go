package plantuml

import (
	"strings"

	"github.com/viant/phpgraph/inspector/graph"
)

// Header holds the document layout directives
const Header = "skinparam shadowing false\n" +
	"skinparam linetype ortho\n" +
	"hide empty members\n" +
	"left to right direction\n" +
	`set namespaceSeparator \\` + "\n"

const traitStereotype = " << (T,#FF7700) Trait >>"

var escaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`, "\x00", `\0`)

// Escape escapes a name so that namespace separators survive in the markup
func Escape(name string) string {
	return escaper.Replace(name)
}

// Render returns a class diagram document for a namespace tree
func Render(root *graph.Namespace) string {
	builder := &strings.Builder{}
	builder.WriteString(Header)
	builder.WriteString("\n")
	builder.WriteString(RenderNamespace(root))
	return builder.String()
}

// RenderNamespace returns diagram body for a namespace followed by its children
func RenderNamespace(root *graph.Namespace) string {
	builder := &strings.Builder{}
	if root == nil {
		return ""
	}
	root.Walk(func(ns *graph.Namespace) bool {
		for _, class := range ns.Classes.Items() {
			writeClass(builder, class)
		}
		for _, iface := range ns.Interfaces.Items() {
			writeInterface(builder, iface)
		}
		for _, trait := range ns.Traits.Items() {
			writeTrait(builder, trait)
		}
		return true
	})
	return builder.String()
}

func writeClass(builder *strings.Builder, class *graph.Class) {
	className := Escape(class.FQSEN)
	writeUses(builder, className, class.Traits)
	builder.WriteString("\n")
	if class.Abstract {
		builder.WriteString("abstract ")
	}
	builder.WriteString("class ")
	builder.WriteString(className)
	if class.Parent != nil {
		builder.WriteString(" extends ")
		builder.WriteString(Escape(class.Parent.Name()))
	}
	if len(class.Interfaces) > 0 {
		builder.WriteString(" implements ")
		builder.WriteString(joinNames(class.Interfaces))
	}
	builder.WriteString(" {\n}\n")
}

func writeInterface(builder *strings.Builder, iface *graph.Interface) {
	builder.WriteString("\ninterface ")
	builder.WriteString(Escape(iface.FQSEN))
	if len(iface.Parents) > 0 {
		builder.WriteString(" extends ")
		builder.WriteString(joinNames(iface.Parents))
	}
	builder.WriteString(" {\n}\n")
}

func writeTrait(builder *strings.Builder, trait *graph.Trait) {
	traitName := Escape(trait.FQSEN)
	writeUses(builder, traitName, trait.Traits)
	builder.WriteString("\nclass ")
	builder.WriteString(traitName)
	builder.WriteString(traitStereotype)
	builder.WriteString(" {\n}\n")
}

// writeUses emits one edge per used trait: Trait <-- User : uses
func writeUses(builder *strings.Builder, userName string, traits []*graph.Ref) {
	for _, trait := range traits {
		if trait == nil {
			continue
		}
		builder.WriteString(Escape(trait.Name()))
		builder.WriteString(" <-- ")
		builder.WriteString(userName)
		builder.WriteString(" : uses\n")
	}
}

func joinNames(refs []*graph.Ref) string {
	names := graph.Names(refs)
	for i, name := range names {
		names[i] = Escape(name)
	}
	return strings.Join(names, ",")
}
