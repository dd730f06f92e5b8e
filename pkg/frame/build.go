package frame

import (
	"cmp"
	"slices"

	"github.com/matzehuels/frameglass/pkg/painting"
	"github.com/matzehuels/frameglass/pkg/tags"
)

// Build groups every painting in store into frameglasses.
//
// Landscapes come first (one frameglass each, in the order selected by
// opts.Landscapes), followed by the portrait pairs from [PairPortraits].
// The result is a partition of the store's indices: every painting appears
// in exactly one frameglass.
func Build(store *painting.Store, opts Options) []Frameglass {
	var landscapes, portraits []painting.Painting
	for _, p := range store.Paintings() {
		switch p.Kind {
		case painting.Landscape:
			landscapes = append(landscapes, p)
		case painting.Portrait:
			portraits = append(portraits, p)
		}
	}

	if opts.Landscapes == LandscapeRareTags {
		landscapes = orderByRareTags(landscapes)
	}

	frames := make([]Frameglass, 0, len(landscapes)+(len(portraits)+1)/2)
	for _, l := range landscapes {
		frames = append(frames, newFrameglass(l))
	}
	return append(frames, PairPortraits(portraits, opts)...)
}

// PairPortraits pairs portraits two by two, maximizing tag coverage per pair.
//
// The portraits slice is not modified. Zero portraits yield nil; an odd
// count leaves the last unmatched portrait as a singleton frameglass.
func PairPortraits(portraits []painting.Painting, opts Options) []Frameglass {
	if len(portraits) == 0 {
		return nil
	}

	pool := slices.Clone(portraits)
	slices.SortStableFunc(pool, func(a, b painting.Painting) int {
		return cmp.Compare(b.Tags.Len(), a.Tags.Len())
	})

	score := opts.Metric.scorer()
	frames := make([]Frameglass, 0, (len(pool)+1)/2)

	for len(pool) > 1 {
		first := pool[0]
		pool = pool[1:]

		limit := len(pool)
		if opts.PairWindow > 0 && opts.PairWindow < limit {
			limit = opts.PairWindow
		}

		best, bestScore := 0, -1
		for i := 0; i < limit; i++ {
			if s := score(first.Tags, pool[i].Tags); s > bestScore {
				best, bestScore = i, s
			}
		}

		frames = append(frames, newFrameglass(first, pool[best]))
		pool = slices.Delete(pool, best, best+1)
	}

	if len(pool) == 1 {
		frames = append(frames, newFrameglass(pool[0]))
	}
	return frames
}

// scorer returns the pairing score function for m.
func (m PairMetric) scorer() func(a, b tags.Set) int {
	if m == PairDistinct {
		return func(a, b tags.Set) int {
			common := tags.CommonCount(a, b)
			return a.Len() + b.Len() - 2*common
		}
	}
	return tags.UnionCount
}

// orderByRareTags reorders landscapes so that those holding the least
// frequent tags come first.
//
// Tags are ranked by ascending frequency (ties keep first-appearance order);
// each tag in turn emits its not-yet-emitted landscapes in input order.
// Landscapes without tags are appended at the end.
func orderByRareTags(landscapes []painting.Painting) []painting.Painting {
	freq := make(map[tags.ID]int)
	holders := make(map[tags.ID][]int)
	var seen []tags.ID

	for pos, l := range landscapes {
		for _, id := range l.Tags {
			if freq[id] == 0 {
				seen = append(seen, id)
			}
			freq[id]++
			holders[id] = append(holders[id], pos)
		}
	}

	slices.SortStableFunc(seen, func(a, b tags.ID) int {
		return cmp.Compare(freq[a], freq[b])
	})

	used := make([]bool, len(landscapes))
	out := make([]painting.Painting, 0, len(landscapes))
	for _, id := range seen {
		for _, pos := range holders[id] {
			if !used[pos] {
				used[pos] = true
				out = append(out, landscapes[pos])
			}
		}
	}
	for pos, l := range landscapes {
		if !used[pos] {
			out = append(out, l)
		}
	}
	return out
}
