package sequence

import (
	"context"
	"slices"

	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/score"
)

// Greedy is the nearest-neighbor orderer.
//
// The first frameglass seeds the sequence. Each step scans the remaining
// pool in its current order (only the first Window entries when Window > 0)
// and appends the candidate with the strictly greatest local score against
// the tail, so the first candidate seen wins ties. When every candidate
// scores zero the first one is taken; the construction never stalls.
type Greedy struct {
	Window   int
	Progress ProgressFunc
}

// Order implements [Orderer].
func (g Greedy) Order(ctx context.Context, frames []frame.Frameglass) ([]frame.Frameglass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return []frame.Frameglass{}, nil
	}

	pool := slices.Clone(frames)
	seq := make([]frame.Frameglass, 0, len(frames))
	seq = append(seq, pool[0])
	pool = pool[1:]
	report(g.Progress, 1, len(frames))

	for len(pool) > 0 {
		if len(seq)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tail := seq[len(seq)-1].Tags
		limit := len(pool)
		if g.Window > 0 && g.Window < limit {
			limit = g.Window
		}
		// No candidate can score above half the tail's tags.
		bound := tail.Len() / 2

		best, bestScore := 0, -1
		for i := range limit {
			if s := score.Local(tail, pool[i].Tags); s > bestScore {
				best, bestScore = i, s
				if s == bound {
					break
				}
			}
		}

		seq = append(seq, pool[best])
		pool = slices.Delete(pool, best, best+1)
		report(g.Progress, len(seq), len(frames))
	}
	return seq, nil
}
