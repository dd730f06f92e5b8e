// Package frame groups paintings into frameglasses.
//
// A frameglass is the unit that gets sequenced: either a single landscape or
// a pair of portraits. Its tag set is the union of its members' tags and is
// computed once, when the frameglass is built.
//
// # Building
//
// [Build] emits one frameglass per landscape first, then pairs the portraits
// with a diversity-maximizing greedy matching:
//
//  1. Portraits are stable-sorted by descending tag count.
//  2. The front portrait is paired with the remaining candidate that scores
//     highest under the configured [PairMetric]; the first candidate seen
//     wins ties.
//  3. An odd leftover portrait becomes a singleton frameglass.
//
// Scanning every remaining candidate is O(P²) per round. Setting
// [Options].PairWindow bounds the scan to the first K remaining candidates,
// which trades pairing quality for near-linear rounds on large inputs.
//
// # Landscape order
//
// Landscapes are emitted in input order by default. [LandscapeRareTags]
// emits them grouped by their rarest tags first, so landscapes sharing an
// uncommon tag end up adjacent in the builder output, which the greedy
// sequencer uses as its seed order.
//
// # Rebuilding
//
// [FromIndices] turns index groups (a solution file, a cached result) back
// into frameglasses and checks that they form a valid partition of the
// store.
package frame
