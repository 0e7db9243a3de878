package symbol

import "strings"

// Separator is the namespace path separator
const Separator = `\`

// TrimSeparator removes leading separators from a name
func TrimSeparator(name string) string {
	return strings.TrimLeft(name, Separator)
}

// LastSegment returns the part of a name after the final separator, or the whole name
func LastSegment(name string) string {
	if idx := strings.LastIndex(name, Separator); idx != -1 {
		return name[idx+1:]
	}
	return name
}

// Join joins name segments with the separator, skipping empty ones
func Join(segments ...string) string {
	var parts []string
	for _, segment := range segments {
		if segment = strings.Trim(segment, Separator); segment != "" {
			parts = append(parts, segment)
		}
	}
	return strings.Join(parts, Separator)
}

// FQSEN returns a fully qualified structural element name, with leading separator
func FQSEN(segments ...string) string {
	return Separator + Join(segments...)
}

// IsFullyQualified returns true if name starts with the separator
func IsFullyQualified(name string) bool {
	return strings.HasPrefix(name, Separator)
}

var keywords = map[string]bool{
	"self": true, "static": true, "parent": true,
	"int": true, "float": true, "string": true, "bool": true, "array": true,
	"callable": true, "iterable": true, "object": true, "mixed": true,
	"void": true, "null": true, "never": true, "false": true, "true": true,
}

// IsKeyword returns true for names that are never resolved against imports
func IsKeyword(name string) bool {
	return keywords[strings.ToLower(name)]
}
