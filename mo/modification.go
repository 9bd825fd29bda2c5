package mo

// Modification is a single key=value override applied to a declaration, an
// extends clause or an annotation. Value holds the literal expression text
// and is emitted verbatim. Nested holds sub-modifications for shapes such as
// a(b=1) or a(b(c=2))=3; a modification with neither Value nor Nested renders
// as the bare key.
type Modification struct {
	Key    string
	Value  string
	Nested Modifications
}

// Modifications is an insertion-ordered list of modifications. Output order
// is part of the observable contract, so this is never a map.
type Modifications []Modification

// Mod returns a plain key=value modification.
func Mod(key, value string) Modification {
	return Modification{Key: key, Value: value}
}

// ModNested returns a modification with sub-modifications, e.g. a(b=1, c=2).
func ModNested(key string, nested ...Modification) Modification {
	return Modification{Key: key, Nested: nested}
}

// Add appends a modification preserving insertion order.
func (m *Modifications) Add(mod Modification) {
	*m = append(*m, mod)
}

// Set replaces the value of an existing key in place, or appends when the
// key is not present yet.
func (m *Modifications) Set(key, value string) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Modification{Key: key, Value: value})
}

// Lookup returns the first modification with the given key.
func (m Modifications) Lookup(key string) (Modification, bool) {
	for _, mod := range m {
		if mod.Key == key {
			return mod, true
		}
	}
	return Modification{}, false
}
