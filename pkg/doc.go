// Package pkg provides the libraries behind the frameglass slideshow solver.
//
// # Overview
//
// Frameglass arranges a collection of paintings into a sequence of
// frameglasses. A landscape fills a frameglass on its own; two portraits
// share one. Consecutive frameglasses are scored by
//
//	min(|A ∩ B|, |A \ B|, |B \ A|)
//
// over their tag sets, and the goal is a sequence with a high total.
//
// # Architecture
//
//	input text
//	     ↓
//	[io] + [painting] (parse and intern tags)
//	     ↓
//	[frame] (landscapes alone, portraits paired for tag diversity)
//	     ↓
//	[sequence] (greedy nearest neighbour, optionally chunked via [parallel])
//	     ↓
//	[score] (local and global satisfaction)
//
// [pipeline] runs these stages end to end, consulting [cache] for previously
// solved inputs and reporting through [observability].
//
// # Quick Start
//
//	store, _ := io.ImportPaintings("a_example.txt", io.ReadOptions{})
//	frames := frame.Build(store, frame.Options{})
//	seq, _ := sequence.Greedy{}.Order(ctx, frames)
//	fmt.Println(score.Global(seq))
//
// # Main Packages
//
// [tags] - String interning and sorted tag sets with linear-merge counting.
//
// [painting] - The immutable painting store, indexed by input position.
//
// [frame] - Frameglass construction and validation of existing groupings.
//
// [sequence] - Ordering strategies: linear-scan greedy, heap-based greedy,
// tag-graph traversal, and the chunked parallel wrapper.
//
// [taggraph] - Graph of frameglasses sharing a tag held by exactly two of
// them, with DFS traversal and DOT/SVG export.
//
// [cache] - Solution cache with null, file and Redis backends.
//
// [errors] - Coded errors shared by all packages.
//
// [tags]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/tags
// [painting]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/painting
// [io]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/io
// [frame]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/frame
// [sequence]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/sequence
// [parallel]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/parallel
// [score]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/score
// [taggraph]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/taggraph
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/frameglass/pkg/errors
package pkg
