package sequence

import (
	"context"

	"github.com/matzehuels/frameglass/pkg/frame"
)

// Orderer arranges frameglasses into a sequence.
//
// The returned slice is a permutation of frames. Implementations must not
// modify frames and should return ctx.Err() promptly once ctx is done.
type Orderer interface {
	Order(ctx context.Context, frames []frame.Frameglass) ([]frame.Frameglass, error)
}

// ProgressFunc is called after each placement with the number of
// frameglasses placed so far and the total.
type ProgressFunc func(placed, total int)

// checkEvery is how many placements may pass between context checks.
const checkEvery = 64

func report(fn ProgressFunc, placed, total int) {
	if fn != nil {
		fn(placed, total)
	}
}
