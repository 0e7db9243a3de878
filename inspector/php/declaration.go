package php

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/phpgraph/inspector/node"
)

// parseNamespaceName extracts the name of a namespace definition
func parseNamespaceName(n *sitter.Node, source []byte) string {
	if nameNode := n.ChildByFieldName("name"); nameNode != nil {
		return nameNode.Content(source)
	}
	if nameNode := firstNamedChild(n, "namespace_name"); nameNode != nil {
		return nameNode.Content(source)
	}
	return ""
}

// parseUseDeclaration maps use A\B, C as D; and use A\{B, C as D}; statements
func parseUseDeclaration(n *sitter.Node, source []byte) node.Stmt {
	kind := parseUseKind(n, source, node.UseNormal)
	var group *sitter.Node
	var prefix string
	var items []*node.UseItem
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "namespace_use_group":
			group = child
		case "namespace_name":
			prefix = child.Content(source)
		case "namespace_use_clause":
			items = append(items, parseUseClause(child, source, kind))
		}
	}
	if group == nil {
		return &node.Use{Kind: kind, Uses: items}
	}
	result := &node.GroupUse{Kind: kind, Prefix: prefix}
	for i := 0; i < int(group.NamedChildCount()); i++ {
		child := group.NamedChild(i)
		switch child.Type() {
		case "namespace_use_clause", "namespace_use_group_clause":
			result.Uses = append(result.Uses, parseUseClause(child, source, kind))
		}
	}
	return result
}

// parseUseClause extracts imported name and optional alias
func parseUseClause(n *sitter.Node, source []byte, kind node.UseKind) *node.UseItem {
	item := &node.UseItem{Kind: parseUseKind(n, source, kind)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "name", "qualified_name", "namespace_name":
			if item.Name == "" {
				item.Name = child.Content(source)
			} else if item.Alias == "" {
				item.Alias = child.Content(source)
			}
		case "namespace_aliasing_clause":
			if alias := firstNamedChild(child, "name"); alias != nil {
				item.Alias = alias.Content(source)
			}
		}
	}
	if alias := n.ChildByFieldName("alias"); alias != nil {
		item.Alias = alias.Content(source)
	}
	return item
}

func parseUseKind(n *sitter.Node, source []byte, defaultKind node.UseKind) node.UseKind {
	if typeNode := n.ChildByFieldName("type"); typeNode != nil {
		return useKind(typeNode.Content(source), defaultKind)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.IsNamed() {
			continue
		}
		switch strings.ToLower(child.Type()) {
		case "function", "const":
			return useKind(child.Type(), defaultKind)
		}
	}
	return defaultKind
}

func useKind(keyword string, defaultKind node.UseKind) node.UseKind {
	switch strings.ToLower(keyword) {
	case "function":
		return node.UseFunction
	case "const":
		return node.UseConstant
	}
	return defaultKind
}

// parseClassDeclaration maps class declaration with its parent, interfaces and traits
func parseClassDeclaration(n *sitter.Node, source []byte) *node.Class {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	class := &node.Class{Name: nameNode.Content(source), Line: line(n)}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "base_clause":
			if parents := parseNames(child, source); len(parents) > 0 {
				class.Extends = parents[0]
			}
		case "class_interface_clause":
			class.Implements = parseNames(child, source)
		default:
			switch modifier(child, source) {
			case "abstract":
				class.Abstract = true
			case "final":
				class.Final = true
			}
		}
	}
	class.Uses = parseTraitUses(n.ChildByFieldName("body"), source)
	return class
}

// parseInterfaceDeclaration maps interface declaration with its parents
func parseInterfaceDeclaration(n *sitter.Node, source []byte) *node.Interface {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	result := &node.Interface{Name: nameNode.Content(source), Line: line(n)}
	if base := firstNamedChild(n, "base_clause"); base != nil {
		result.Extends = parseNames(base, source)
	}
	return result
}

// parseTraitDeclaration maps trait declaration with its used traits
func parseTraitDeclaration(n *sitter.Node, source []byte) *node.Trait {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	return &node.Trait{
		Name: nameNode.Content(source),
		Uses: parseTraitUses(n.ChildByFieldName("body"), source),
		Line: line(n),
	}
}

func parseFunctionDefinition(n *sitter.Node, source []byte) *node.Function {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	return &node.Function{Name: nameNode.Content(source), Line: line(n)}
}

func parseConstDeclaration(n *sitter.Node, source []byte) *node.Const {
	result := &node.Const{Line: line(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		element := n.NamedChild(i)
		if element.Type() != "const_element" || element.NamedChildCount() == 0 {
			continue
		}
		result.Names = append(result.Names, element.NamedChild(0).Content(source))
		value := ""
		if element.NamedChildCount() > 1 {
			value = element.NamedChild(int(element.NamedChildCount()) - 1).Content(source)
		}
		result.Values = append(result.Values, value)
	}
	if len(result.Names) == 0 {
		return nil
	}
	return result
}

// parseTraitUses collects trait names from use declarations in a class or trait body
func parseTraitUses(body *sitter.Node, source []byte) []string {
	if body == nil {
		return nil
	}
	var result []string
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if child.Type() == "use_declaration" {
			result = append(result, parseNames(child, source)...)
		}
	}
	return result
}

// parseNames returns names listed directly under a clause node
func parseNames(n *sitter.Node, source []byte) []string {
	var result []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "name", "qualified_name":
			result = append(result, child.Content(source))
		}
	}
	return result
}

// modifier returns lower case abstract/final modifier keyword or empty string
func modifier(n *sitter.Node, source []byte) string {
	nodeType := n.Type()
	if nodeType == "abstract" || nodeType == "final" {
		return nodeType
	}
	if strings.HasSuffix(nodeType, "modifier") {
		return strings.ToLower(strings.TrimSpace(n.Content(source)))
	}
	return ""
}

func firstNamedChild(n *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}
