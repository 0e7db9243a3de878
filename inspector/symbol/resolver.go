package symbol

import (
	"github.com/viant/phpgraph/inspector/node"
)

// Resolve builds a context from namespace imports.
// Import kinds are not distinguished: all imports share one alias map and a later
// import overrides an earlier one with the same key.
func Resolve(namespace *node.Namespace) *Context {
	if !namespace.HasName() {
		return NewContext("", nil)
	}
	aliases := map[string]string{}
	for _, stmt := range namespace.Stmts {
		switch actual := stmt.(type) {
		case *node.Use:
			for _, item := range actual.Uses {
				if item == nil {
					continue
				}
				value := TrimSeparator(item.Name)
				aliases[aliasKey(item.Alias, value)] = value
			}
		case *node.GroupUse:
			prefix := TrimSeparator(actual.Prefix)
			for _, item := range actual.Uses {
				if item == nil {
					continue
				}
				value := prefix + Separator + item.Name
				aliases[aliasKey(item.Alias, item.Name)] = value
			}
		}
	}
	return NewContext(namespace.Name, aliases)
}

func aliasKey(alias, name string) string {
	if alias != "" {
		return alias
	}
	return LastSegment(name)
}
