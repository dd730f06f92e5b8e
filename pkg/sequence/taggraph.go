package sequence

import (
	"context"

	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/tags"
	"github.com/matzehuels/frameglass/pkg/taggraph"
)

// TagGraph orders frameglasses by a depth-first walk of their tag adjacency
// graph. Frameglasses that are the only two holders of a tag end up close
// together; components are visited in emission order.
type TagGraph struct{}

// Order implements [Orderer].
func (TagGraph) Order(ctx context.Context, frames []frame.Frameglass) ([]frame.Frameglass, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return []frame.Frameglass{}, nil
	}

	sets := make([]tags.Set, len(frames))
	for i, f := range frames {
		sets[i] = f.Tags
	}
	g := taggraph.Build(sets)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order := g.Traverse()
	seq := make([]frame.Frameglass, len(order))
	for i, v := range order {
		seq[i] = frames[v]
	}
	return seq, nil
}
