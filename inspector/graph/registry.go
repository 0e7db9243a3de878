package graph

// Descriptor represents a structural element with a fully qualified name
type Descriptor interface {
	FullyQualifiedName() string
}

// Registry keeps descriptors in insertion order, keyed by fully qualified name.
// Adding a descriptor under an existing key replaces it in place.
type Registry[T Descriptor] struct {
	items []T
	index map[string]int // Map of items for quick lookup
}

// Add adds or replaces a descriptor
func (r *Registry[T]) Add(item T) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	key := item.FullyQualifiedName()
	if idx, ok := r.index[key]; ok {
		r.items[idx] = item
		return
	}
	r.items = append(r.items, item)
	r.index[key] = len(r.items) - 1
}

// Lookup retrieves a descriptor by fully qualified name
func (r *Registry[T]) Lookup(fqsen string) (T, bool) {
	var zero T
	if r.index == nil {
		return zero, false
	}
	if idx, ok := r.index[fqsen]; ok && idx < len(r.items) {
		return r.items[idx], true
	}
	return zero, false
}

// Items returns descriptors in insertion order, the slice must not be modified
func (r *Registry[T]) Items() []T {
	return r.items
}

// Len returns number of descriptors
func (r *Registry[T]) Len() int {
	return len(r.items)
}
