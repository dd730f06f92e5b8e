package sequence

import (
	"context"
	"errors"

	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/parallel"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
)

// DefaultChunkSize is used by [Chunked] when Size is not positive.
const DefaultChunkSize = 2000

// Chunked splits the frameglasses into contiguous chunks of Size, orders
// each chunk with Inner on up to Workers goroutines and concatenates the
// ordered chunks in chunk order.
//
// Chunking bounds the quadratic cost of the greedy scan at the price of
// quality: transitions between the last frameglass of one chunk and the
// first of the next are never optimized. With Workers = 1 the chunks are
// processed one after another.
//
// Inner defaults to [Greedy] and Workers to GOMAXPROCS. If any chunk fails
// the whole run fails with a WORKER_FAILED error and no partial sequence is
// returned. Cancellation is reported as the plain context error.
type Chunked struct {
	Size    int
	Workers int
	Inner   Orderer
}

type chunk struct {
	index  int
	frames []frame.Frameglass
}

// Order implements [Orderer].
func (c Chunked) Order(ctx context.Context, frames []frame.Frameglass) ([]frame.Frameglass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return []frame.Frameglass{}, nil
	}

	size := c.Size
	if size <= 0 {
		size = DefaultChunkSize
	}
	inner := c.Inner
	if inner == nil {
		inner = Greedy{}
	}

	parts := parallel.Partition(frames, size)
	chunks := make([]chunk, len(parts))
	for i, p := range parts {
		chunks[i] = chunk{index: i, frames: p}
	}

	ordered, err := parallel.Map(ctx, chunks, c.Workers, func(ctx context.Context, ch chunk) (out []frame.Frameglass, err error) {
		out, err = inner.Order(ctx, ch.frames)
		if err != nil && !isContextErr(err) {
			return nil, apperr.Wrap(apperr.ErrCodeWorkerFailed, err, "chunk %d", ch.index)
		}
		return out, err
	})
	if err != nil {
		if isContextErr(err) {
			return nil, err
		}
		if !apperr.Is(err, apperr.ErrCodeWorkerFailed) {
			err = apperr.Wrap(apperr.ErrCodeWorkerFailed, err, "ordering chunks")
		}
		return nil, err
	}

	seq := make([]frame.Frameglass, 0, len(frames))
	for _, part := range ordered {
		seq = append(seq, part...)
	}
	return seq, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
