// Package io reads painting collections and reads and writes frameglass
// solutions.
//
// # Input Format
//
// An input file starts with the number of paintings, followed by one line
// per painting:
//
//	3
//	L 2 cat garden
//	P 1 selfie
//	P 2 garden sun
//
// Each line holds the type (L for landscape, P for portrait), the number of
// tags and the tags themselves. Paintings are identified by their 0-based
// position among the data lines.
//
// [ReadPaintings] is lenient where the file is merely inconsistent: the tokens
// present on a line win over the declared counts, and every mismatch is
// reported through [ReadOptions].Warn. A header that is not a number, an
// unknown type or a non-numeric tag count make the file unreadable and
// produce a MALFORMED_INPUT error naming the line. Blank lines are ignored
// and an empty input is an empty collection.
//
// # Solution Format
//
// A solution lists the number of frameglasses followed by the painting
// indices of each frameglass in slideshow order:
//
//	2
//	0
//	1 2
//
// [WriteSolution] and [ReadSolution] handle this format. [WriteJSON] emits
// the same data with the run ID and score for tooling.
package io
