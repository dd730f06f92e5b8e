package frame

import (
	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/painting"
)

// FromIndices rebuilds frameglasses from groups of painting indices, in the
// given order.
//
// The groups must form a valid partition of store:
//   - every group holds one or two indices, each within range
//   - no index appears twice and no index is missing
//   - a two-painting group holds two portraits
//   - a one-painting group holds a landscape, or the single leftover portrait
//     when the store has an odd number of portraits
//
// Violations are reported as ErrCodeInvalidSolution.
func FromIndices(store *painting.Store, groups [][]int) ([]Frameglass, error) {
	n := store.Len()
	used := make([]bool, n)
	_, portraits := store.Count()
	singlePortraits := 0

	frames := make([]Frameglass, 0, len(groups))
	for gi, g := range groups {
		if len(g) != 1 && len(g) != 2 {
			return nil, apperr.New(apperr.ErrCodeInvalidSolution,
				"frameglass %d: has %d paintings (must be 1 or 2)", gi, len(g))
		}

		members := make([]painting.Painting, len(g))
		for i, idx := range g {
			if idx < 0 || idx >= n {
				return nil, apperr.New(apperr.ErrCodeInvalidSolution,
					"frameglass %d: painting %d out of range [0, %d)", gi, idx, n)
			}
			if used[idx] {
				return nil, apperr.New(apperr.ErrCodeInvalidSolution,
					"frameglass %d: painting %d used more than once", gi, idx)
			}
			used[idx] = true
			members[i] = store.At(idx)
		}

		if len(members) == 2 {
			for _, p := range members {
				if p.Kind != painting.Portrait {
					return nil, apperr.New(apperr.ErrCodeInvalidSolution,
						"frameglass %d: painting %d is a landscape and cannot be paired", gi, p.Index)
				}
			}
		} else if members[0].Kind == painting.Portrait {
			singlePortraits++
			if portraits%2 == 0 || singlePortraits > 1 {
				return nil, apperr.New(apperr.ErrCodeInvalidSolution,
					"frameglass %d: portrait %d must be paired", gi, members[0].Index)
			}
		}

		frames = append(frames, newFrameglass(members...))
	}

	for idx, ok := range used {
		if !ok {
			return nil, apperr.New(apperr.ErrCodeInvalidSolution, "painting %d is missing", idx)
		}
	}
	return frames, nil
}
