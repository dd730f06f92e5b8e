package frame

import (
	"slices"

	"github.com/matzehuels/frameglass/pkg/painting"
	"github.com/matzehuels/frameglass/pkg/tags"
)

// Frameglass is one or two paintings displayed together.
// Frameglasses are never mutated after they are built.
type Frameglass struct {
	Paintings []int    // painting indices: one landscape, or one or two portraits
	Tags      tags.Set // union of the members' tags, cached at creation
}

// newFrameglass builds a frameglass from store paintings, caching the tag union.
func newFrameglass(ps ...painting.Painting) Frameglass {
	f := Frameglass{Paintings: make([]int, len(ps))}
	for i, p := range ps {
		f.Paintings[i] = p.Index
		if i == 0 {
			f.Tags = p.Tags
		} else {
			f.Tags = tags.Union(f.Tags, p.Tags)
		}
	}
	return f
}

// IsPair reports whether the frameglass holds two paintings.
func (f Frameglass) IsPair() bool { return len(f.Paintings) == 2 }

// Indices returns the painting indices of each frameglass, in sequence order.
// This is the shape written to solution files.
func Indices(frames []Frameglass) [][]int {
	out := make([][]int, len(frames))
	for i, f := range frames {
		out[i] = slices.Clone(f.Paintings)
	}
	return out
}

// PaintingCount returns the total number of paintings across frames.
func PaintingCount(frames []Frameglass) int {
	n := 0
	for _, f := range frames {
		n += len(f.Paintings)
	}
	return n
}
