// Package sequence orders frameglasses into a slideshow.
//
// All strategies implement [Orderer]. They are heuristics: none of them
// searches for the optimal order, and all of them are deterministic for a
// given input.
//
// # Strategies
//
//   - [Greedy]: nearest-neighbor construction. Starting from the first
//     frameglass, repeatedly append the remaining frameglass with the highest
//     local score against the current tail. An optional window bounds the
//     scan to the first candidates of the pool, trading quality for speed.
//   - [Heap]: the same construction driven by a max-heap rebuilt after every
//     placement. Ties go to the candidate with the lexicographically smallest
//     painting list rather than to the first one encountered.
//   - [TagGraph]: depth-first walk of the tag adjacency graph (see package
//     taggraph). Much faster than the greedy scan on large inputs.
//   - [Chunked]: partitions the frameglasses into contiguous chunks, orders
//     each chunk with an inner strategy on a worker pool and concatenates the
//     results. Transitions across chunk boundaries are never optimized.
//
// Orderers never modify the slice they are given and check the context
// between placements so long runs can be interrupted.
package sequence
