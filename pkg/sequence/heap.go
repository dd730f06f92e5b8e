package sequence

import (
	"container/heap"
	"context"
	"slices"

	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/score"
)

// Heap is the nearest-neighbor orderer driven by a priority queue.
//
// After each placement the scores of all remaining frameglasses against the
// new tail are loaded into a max-heap and the top is taken. Equal scores are
// ordered by painting indices (lexicographically smallest first), which can
// pick a different candidate than [Greedy] on ties.
type Heap struct {
	Progress ProgressFunc
}

type candidate struct {
	score int
	pos   int   // position in the pool
	key   []int // painting indices, for tie-breaking
}

type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return slices.Compare(h[i].key, h[j].key) < 0
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// Order implements [Orderer].
func (hp Heap) Order(ctx context.Context, frames []frame.Frameglass) ([]frame.Frameglass, error) {
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
	report(hp.Progress, 1, len(frames))

	h := make(candidateHeap, 0, len(pool))
	for len(pool) > 0 {
		if len(seq)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tail := seq[len(seq)-1].Tags
		h = h[:0]
		for i, f := range pool {
			h = append(h, candidate{score: score.Local(tail, f.Tags), pos: i, key: f.Paintings})
		}
		heap.Init(&h)
		top := heap.Pop(&h).(candidate)

		seq = append(seq, pool[top.pos])
		pool = slices.Delete(pool, top.pos, top.pos+1)
		report(hp.Progress, len(seq), len(frames))
	}
	return seq, nil
}
