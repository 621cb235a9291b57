// Family enumeration in table order.
package mtdata

import "iter"

// Enumerate yields every registered (key, directory) pair in table
// order. Callers consume results lazily via range and can break early.
func (r *Registry) Enumerate() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, f := range families {
			if !yield(f.Key, r.dirs[f.Key]) {
				return
			}
		}
	}
}

// Keys returns all family keys in table order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(families))
	for i, f := range families {
		keys[i] = f.Key
	}
	return keys
}
