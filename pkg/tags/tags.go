package tags

import (
	"slices"
)

// ID is an interned tag identifier. IDs are dense and start at zero.
type ID int32

// Dictionary maps tag names to IDs and back.
//
// The zero value is not usable - use NewDictionary.
// Dictionary is not safe for concurrent mutation; once parsing is finished
// it is only read.
type Dictionary struct {
	ids   map[string]ID
	names []string
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{ids: make(map[string]ID)}
}

// Intern returns the ID for name, assigning the next free ID on first use.
func (d *Dictionary) Intern(name string) ID {
	if id, ok := d.ids[name]; ok {
		return id
	}
	id := ID(len(d.names))
	d.ids[name] = id
	d.names = append(d.names, name)
	return id
}

// Lookup returns the ID for name without interning it.
func (d *Dictionary) Lookup(name string) (ID, bool) {
	id, ok := d.ids[name]
	return id, ok
}

// Name returns the tag name for id. It panics if id was not issued by d.
func (d *Dictionary) Name(id ID) string {
	return d.names[id]
}

// Len returns the number of distinct tags interned so far.
func (d *Dictionary) Len() int {
	return len(d.names)
}

// Names resolves every ID in s to its tag name, preserving set order.
func (d *Dictionary) Names(s Set) []string {
	out := make([]string, len(s))
	for i, id := range s {
		out[i] = d.names[id]
	}
	return out
}

// Set is a sorted, duplicate-free collection of tag IDs.
// Sets are treated as immutable values; operations return new sets.
type Set []ID

// NewSet builds a Set from ids in any order, dropping duplicates.
// The ids slice is not modified.
func NewSet(ids ...ID) Set {
	if len(ids) == 0 {
		return Set{}
	}
	s := slices.Clone(ids)
	slices.Sort(s)
	return Set(slices.Compact(s))
}

// Len returns the number of tags in s.
func (s Set) Len() int { return len(s) }

// Contains reports whether id is a member of s.
func (s Set) Contains(id ID) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// Union returns the set of tags present in a or b.
func Union(a, b Set) Set {
	out := make(Set, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

// CommonCount returns |a ∩ b| without allocating.
func CommonCount(a, b Set) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}

// UnionCount returns |a ∪ b| without allocating.
func UnionCount(a, b Set) int {
	return len(a) + len(b) - CommonCount(a, b)
}
