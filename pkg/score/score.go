// Package score computes satisfaction scores for frameglass sequences.
//
// The local satisfaction of two adjacent frameglasses with tag sets A and B is
//
//	min(|A ∩ B|, |A \ B|, |B \ A|)
//
// and the global satisfaction of a sequence is the sum of local scores over
// all adjacent pairs. Both functions are pure and deterministic.
package score

import (
	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/tags"
)

// Local returns the satisfaction between two adjacent tag sets.
// Local is symmetric: Local(a, b) == Local(b, a).
func Local(a, b tags.Set) int {
	common := tags.CommonCount(a, b)
	return min(common, a.Len()-common, b.Len()-common)
}

// Global returns the total satisfaction of seq. Sequences with fewer than
// two frameglasses score zero.
func Global(seq []frame.Frameglass) int {
	total := 0
	for i := 1; i < len(seq); i++ {
		total += Local(seq[i-1].Tags, seq[i].Tags)
	}
	return total
}

// Transitions returns the local score of every adjacent pair in seq, so
// that Transitions(seq)[i] scores seq[i] followed by seq[i+1].
func Transitions(seq []frame.Frameglass) []int {
	if len(seq) < 2 {
		return nil
	}
	out := make([]int, len(seq)-1)
	for i := range out {
		out[i] = Local(seq[i].Tags, seq[i+1].Tags)
	}
	return out
}

// Summary describes the transitions of a sequence.
type Summary struct {
	Total       int // global satisfaction
	Transitions int // number of adjacent pairs
	Zero        int // transitions scoring zero
	Max         int // best single transition
}

// Summarize computes a Summary for seq.
func Summarize(seq []frame.Frameglass) Summary {
	var s Summary
	for _, v := range Transitions(seq) {
		s.Total += v
		s.Transitions++
		if v == 0 {
			s.Zero++
		}
		s.Max = max(s.Max, v)
	}
	return s
}
