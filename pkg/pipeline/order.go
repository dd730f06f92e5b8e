package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/painting"
	"github.com/matzehuels/frameglass/pkg/sequence"
	"github.com/matzehuels/frameglass/pkg/tags"
	"github.com/matzehuels/frameglass/pkg/taggraph"
)

// Build groups the paintings of store into frameglasses.
func Build(store *painting.Store, opts Options) []frame.Frameglass {
	return frame.Build(store, opts.FrameOptions())
}

// NewOrderer returns the orderer selected by opts.
//
// opts.Orderer wins if set. Otherwise the strategy is looked up by name and
// wrapped in a [sequence.Chunked] when a chunk size is set.
func NewOrderer(opts Options) (sequence.Orderer, error) {
	if opts.Orderer != nil {
		return opts.Orderer, nil
	}

	var o sequence.Orderer
	switch opts.Strategy {
	case StrategyGreedy, "":
		g := sequence.Greedy{Window: opts.Window}
		if !opts.IsChunked() {
			g.Progress = opts.Progress
		}
		o = g
	case StrategyHeap:
		h := sequence.Heap{}
		if !opts.IsChunked() {
			h.Progress = opts.Progress
		}
		o = h
	case StrategyTagGraph:
		o = sequence.TagGraph{}
	default:
		return nil, ValidateStrategy(opts.Strategy)
	}

	if opts.IsChunked() {
		o = sequence.Chunked{Size: opts.ChunkSize, Workers: opts.Workers, Inner: o}
	}
	return o, nil
}

// BuildTagGraph groups the paintings of store and returns the tag adjacency
// graph of the frameglasses with one label per node, such as "3" or "4+7".
func BuildTagGraph(store *painting.Store, opts Options) (*taggraph.Graph, []string, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}

	frames := Build(store, opts)
	sets := make([]tags.Set, len(frames))
	labels := make([]string, len(frames))
	for i, f := range frames {
		sets[i] = f.Tags
		labels[i] = frameLabel(f)
	}
	return taggraph.Build(sets), labels, nil
}

func frameLabel(f frame.Frameglass) string {
	parts := make([]string, len(f.Paintings))
	for i, p := range f.Paintings {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "+")
}
