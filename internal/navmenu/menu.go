package navmenu

import (
	"iter"
	"slices"
)

// Entry is a single sidebar item.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Menu is an ordered, read-only sequence of entries.
//
// The zero value is an empty menu. Menus are safe for concurrent use since no
// method mutates them.
type Menu struct {
	name    string
	entries []Entry
}

// New builds a menu from entries in the given order. The slice is copied.
// New does not validate; see Validate.
func New(name string, entries ...Entry) Menu {
	return Menu{name: name, entries: slices.Clone(entries)}
}

// Name returns the menu identifier, e.g. "integrations".
func (m Menu) Name() string { return m.name }

// Len returns the number of entries.
func (m Menu) Len() int { return len(m.entries) }

// At returns the entry at position i. It panics if i is out of range.
func (m Menu) At(i int) Entry { return m.entries[i] }

// Entries returns a copy of the entries in declaration order.
func (m Menu) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Keys returns the slugs in declaration order.
func (m Menu) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Label returns the display label for key.
func (m Menu) Label(key string) (string, bool) {
	if i := m.Index(key); i >= 0 {
		return m.entries[i].Label, true
	}
	return "", false
}

// Index returns the position of key, or -1.
func (m Menu) Index(key string) int {
	return slices.IndexFunc(m.entries, func(e Entry) bool { return e.Key == key })
}

// All yields (key, label) pairs in declaration order.
func (m Menu) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Label) {
				return
			}
		}
	}
}

// Equal reports whether both menus hold the same entries in the same order.
// Names are not compared.
func (m Menu) Equal(other Menu) bool {
	return slices.Equal(m.entries, other.entries)
}
