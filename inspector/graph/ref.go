package graph

// Ref represents a reference to a parent class, interface or trait.
// A resolved reference points at a descriptor of the processed set, an unresolved
// one only carries the referenced name.
type Ref struct {
	descriptor Descriptor
	name       string
}

// Resolved creates a reference to a known descriptor
func Resolved(descriptor Descriptor) *Ref {
	return &Ref{descriptor: descriptor}
}

// Unresolved creates a reference by name
func Unresolved(name string) *Ref {
	return &Ref{name: name}
}

// Name returns the referenced fully qualified name
func (r *Ref) Name() string {
	if r.descriptor != nil {
		return r.descriptor.FullyQualifiedName()
	}
	return r.name
}

// Descriptor returns the referenced descriptor or nil
func (r *Ref) Descriptor() Descriptor {
	return r.descriptor
}

// IsResolved returns true if reference points at a descriptor
func (r *Ref) IsResolved() bool {
	return r.descriptor != nil
}

func (r *Ref) String() string {
	return r.Name()
}

// Names returns reference names
func Names(refs []*Ref) []string {
	result := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		result = append(result, ref.Name())
	}
	return result
}
