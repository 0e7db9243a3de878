package symbol

import (
	"sort"
	"strings"
)

// Context represents the namespace and import aliases in effect for a block of code.
// A context is immutable once created.
type Context struct {
	namespace string
	aliases   map[string]string
}

// NewContext creates a context, namespace and alias values are stored without leading separator
func NewContext(namespace string, aliases map[string]string) *Context {
	result := &Context{
		namespace: TrimSeparator(namespace),
		aliases:   make(map[string]string, len(aliases)),
	}
	for key, value := range aliases {
		result.aliases[key] = TrimSeparator(value)
	}
	return result
}

// Namespace returns the context namespace
func (c *Context) Namespace() string {
	return c.namespace
}

// Aliases returns a copy of alias map
func (c *Context) Aliases() map[string]string {
	result := make(map[string]string, len(c.aliases))
	for key, value := range c.aliases {
		result[key] = value
	}
	return result
}

// Alias returns the fully qualified name for an alias
func (c *Context) Alias(key string) (string, bool) {
	value, ok := c.aliases[key]
	return value, ok
}

// Keys returns sorted alias keys
func (c *Context) Keys() []string {
	keys := make([]string, 0, len(c.aliases))
	for key := range c.aliases {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Expand resolves a type reference to its fully qualified name, without leading separator
func (c *Context) Expand(name string) string {
	if name == "" {
		return ""
	}
	if IsFullyQualified(name) {
		return TrimSeparator(name)
	}
	if IsKeyword(name) {
		return name
	}
	head, tail := name, ""
	if idx := strings.Index(name, Separator); idx != -1 {
		head, tail = name[:idx], name[idx+1:]
	}
	if strings.EqualFold(head, "namespace") && tail != "" {
		return Join(c.namespace, tail)
	}
	if value, ok := c.aliases[head]; ok {
		return Join(value, tail)
	}
	return Join(c.namespace, name)
}
