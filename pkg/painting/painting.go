// Package painting holds the immutable store of paintings read from input.
//
// A painting is identified by its 0-based position in the input file. Its
// kind and tag set never change after parsing; every later stage (pairing,
// sequencing, scoring) looks paintings up by index.
package painting

import (
	"fmt"

	"github.com/matzehuels/frameglass/pkg/tags"
)

// Kind distinguishes landscapes from portraits.
type Kind uint8

const (
	// Landscape paintings are framed alone.
	Landscape Kind = iota + 1
	// Portrait paintings are framed in pairs.
	Portrait
)

// ParseKind converts the input file's type token ("L" or "P") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "L":
		return Landscape, nil
	case "P":
		return Portrait, nil
	}
	return 0, fmt.Errorf("unknown painting type %q (must be L or P)", s)
}

// String returns the input file token for k.
func (k Kind) String() string {
	switch k {
	case Landscape:
		return "L"
	case Portrait:
		return "P"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Painting is a single input painting.
type Painting struct {
	Index int      // 0-based position in the input
	Kind  Kind     // Landscape or Portrait
	Tags  tags.Set // interned tag set
}

// Store is an index-addressed collection of paintings sharing one tag
// dictionary.
//
// The zero value is not usable - use NewStore. A Store is append-only while
// being built and read-only afterwards.
type Store struct {
	paintings []Painting
	dict      *tags.Dictionary
}

// NewStore creates an empty store. If dict is nil a new dictionary is created.
func NewStore(dict *tags.Dictionary) *Store {
	if dict == nil {
		dict = tags.NewDictionary()
	}
	return &Store{dict: dict}
}

// Add appends a painting with the given tag names and returns its index.
// Duplicate names collapse into a single tag.
func (s *Store) Add(kind Kind, names []string) int {
	ids := make([]tags.ID, len(names))
	for i, name := range names {
		ids[i] = s.dict.Intern(name)
	}
	idx := len(s.paintings)
	s.paintings = append(s.paintings, Painting{
		Index: idx,
		Kind:  kind,
		Tags:  tags.NewSet(ids...),
	})
	return idx
}

// Len returns the number of paintings.
func (s *Store) Len() int { return len(s.paintings) }

// At returns the painting at index i. It panics if i is out of range.
func (s *Store) At(i int) Painting { return s.paintings[i] }

// Paintings returns all paintings in index order.
// The returned slice must not be modified.
func (s *Store) Paintings() []Painting { return s.paintings }

// Dictionary returns the tag dictionary shared by the store's paintings.
func (s *Store) Dictionary() *tags.Dictionary { return s.dict }

// TagNames returns the tag names of painting i in interned order.
func (s *Store) TagNames(i int) []string {
	return s.dict.Names(s.paintings[i].Tags)
}

// Count returns how many paintings of each kind the store holds.
func (s *Store) Count() (landscapes, portraits int) {
	for _, p := range s.paintings {
		switch p.Kind {
		case Landscape:
			landscapes++
		case Portrait:
			portraits++
		}
	}
	return landscapes, portraits
}
