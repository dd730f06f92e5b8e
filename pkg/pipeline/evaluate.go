package pipeline

import (
	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/painting"
	"github.com/matzehuels/frameglass/pkg/score"
)

// Evaluation is the result of checking an existing solution.
type Evaluation struct {
	Sequence []frame.Frameglass
	Summary  score.Summary
}

// Evaluate checks that groups form a valid solution for store and scores it.
// Invalid solutions return an INVALID_SOLUTION error.
func Evaluate(store *painting.Store, groups [][]int) (*Evaluation, error) {
	seq, err := frame.FromIndices(store, groups)
	if err != nil {
		return nil, err
	}
	return &Evaluation{Sequence: seq, Summary: score.Summarize(seq)}, nil
}
