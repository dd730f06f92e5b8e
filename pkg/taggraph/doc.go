// Package taggraph builds the tag adjacency graph of a set of frameglasses.
//
// Two frameglasses are adjacent when they are the only two holders of some
// tag. Such a tag can only ever contribute to a transition between those
// two frameglasses, so keeping them next to each other in the sequence is a
// cheap way to collect it. The graph is typically sparse; a tag held by
// three or more frameglasses adds no edge.
//
// [Graph.Traverse] walks every component with an iterative depth-first
// search, which the taggraph sequencing strategy uses as its order.
// [Graph.ToDOT] and [Graph.RenderSVG] export the graph for inspection.
package taggraph
