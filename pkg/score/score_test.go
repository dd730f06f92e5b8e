package score

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/tags"
)

func fg(ids ...tags.ID) frame.Frameglass {
	return frame.Frameglass{Tags: tags.NewSet(ids...)}
}

func TestLocal(t *testing.T) {
	cases := []struct {
		name string
		a, b tags.Set
		want int
	}{
		{"one of each", tags.NewSet(0, 1), tags.NewSet(1, 2), 1},
		{"disjoint", tags.NewSet(0, 1), tags.NewSet(2), 0},
		{"identical", tags.NewSet(0, 1, 2), tags.NewSet(0, 1, 2), 0},
		{"subset", tags.NewSet(0, 1), tags.NewSet(0, 1, 2, 3), 0},
		{"balanced", tags.NewSet(0, 1, 2, 3), tags.NewSet(2, 3, 4, 5), 2},
		{"limited by common", tags.NewSet(0, 1, 2, 9), tags.NewSet(9, 4, 5, 6), 1},
		{"empty", tags.Set{}, tags.NewSet(1), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Local(tc.a, tc.b))
		})
	}
}

func TestLocal_Symmetric(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	randomSet := func() tags.Set {
		n := r.IntN(8)
		ids := make([]tags.ID, n)
		for i := range ids {
			ids[i] = tags.ID(r.IntN(10))
		}
		return tags.NewSet(ids...)
	}
	for i := 0; i < 500; i++ {
		a, b := randomSet(), randomSet()
		assert.Equal(t, Local(a, b), Local(b, a), "a=%v b=%v", a, b)
		assert.Zero(t, Local(a, a), "self score must be zero for %v", a)
	}
}

func TestGlobal_ShortSequences(t *testing.T) {
	assert.Zero(t, Global(nil))
	assert.Zero(t, Global([]frame.Frameglass{}))
	assert.Zero(t, Global([]frame.Frameglass{fg(0, 1, 2)}))
	assert.Nil(t, Transitions([]frame.Frameglass{fg(0)}))
}

func TestGlobal_Example(t *testing.T) {
	// {a,b} {b,c} {d}: 1 + 0.
	a, b, c, d := tags.ID(0), tags.ID(1), tags.ID(2), tags.ID(3)
	seq := []frame.Frameglass{fg(a, b), fg(b, c), fg(d)}

	assert.Equal(t, 1, Global(seq))
	assert.Equal(t, []int{1, 0}, Transitions(seq))
	assert.Equal(t, Summary{Total: 1, Transitions: 2, Zero: 1, Max: 1}, Summarize(seq))
}
