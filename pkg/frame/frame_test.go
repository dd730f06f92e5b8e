package frame

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/painting"
)

type row struct {
	kind painting.Kind
	tags []string
}

func L(tags ...string) row { return row{painting.Landscape, tags} }
func P(tags ...string) row { return row{painting.Portrait, tags} }

func newStore(rows ...row) *painting.Store {
	s := painting.NewStore(nil)
	for _, r := range rows {
		s.Add(r.kind, r.tags)
	}
	return s
}

// assertPartition checks that frames cover every painting exactly once.
func assertPartition(t *testing.T, store *painting.Store, frames []Frameglass) {
	t.Helper()
	var all []int
	for _, f := range frames {
		require.NotEmpty(t, f.Paintings)
		require.LessOrEqual(t, len(f.Paintings), 2)
		all = append(all, f.Paintings...)
	}
	slices.Sort(all)
	want := make([]int, store.Len())
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, all)
}

func TestBuild_LandscapesOnly(t *testing.T) {
	store := newStore(L("a", "b"), L("b", "c"), L("d"))
	frames := Build(store, Options{})

	require.Len(t, frames, 3)
	assert.Equal(t, [][]int{{0}, {1}, {2}}, Indices(frames))
	assertPartition(t, store, frames)
}

func TestBuild_PairingExample(t *testing.T) {
	// {a}, {a,b}, {c}, {c,d}: sorted by tag count the pool is
	// [1 {a,b}, 3 {c,d}, 0 {a}, 2 {c}]. Painting 1 pairs with 3 (union 4),
	// then 0 pairs with 2.
	store := newStore(P("a"), P("a", "b"), P("c"), P("c", "d"))
	frames := Build(store, Options{})

	assert.Equal(t, [][]int{{1, 3}, {0, 2}}, Indices(frames))
	assert.Equal(t, 4, frames[0].Tags.Len())
	assert.Equal(t, 2, frames[1].Tags.Len())
	assertPartition(t, store, frames)
}

func TestPairPortraits_PrefersCoverage(t *testing.T) {
	// Front {a,q}: {c,d} (union 4) beats {a,b} (union 3).
	store := newStore(P("a", "q"), P("a", "b"), P("c", "d"))
	ps := store.Paintings()

	frames := PairPortraits(ps, Options{})
	assert.Equal(t, [][]int{{0, 2}, {1}}, Indices(frames))
	assert.Equal(t, []int{0, 1, 2}, []int{ps[0].Index, ps[1].Index, ps[2].Index}, "input must not be reordered")
}

func TestPairPortraits_TieKeepsFirstSeen(t *testing.T) {
	// All candidates give the same union; the first in sorted order wins.
	store := newStore(P("x", "y"), P("a"), P("b"), P("c"))
	frames := Build(store, Options{})
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, Indices(frames))
}

func TestPairPortraits_OddCountLeavesSingleton(t *testing.T) {
	store := newStore(P("a", "b", "c"), P("d"), P("e", "f"))
	frames := Build(store, Options{})

	require.Len(t, frames, 2)
	assert.True(t, frames[0].IsPair())
	assert.False(t, frames[1].IsPair())
	assertPartition(t, store, frames)
}

func TestBuild_EdgeCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Build(newStore(), Options{}))
	})
	t.Run("one portrait", func(t *testing.T) {
		frames := Build(newStore(P("a")), Options{})
		assert.Equal(t, [][]int{{0}}, Indices(frames))
	})
	t.Run("landscapes before portraits", func(t *testing.T) {
		store := newStore(P("a"), L("b"), P("c"))
		frames := Build(store, Options{})
		assert.Equal(t, [][]int{{1}, {0, 2}}, Indices(frames))
	})
}

func TestPairPortraits_Window(t *testing.T) {
	// Sorted pool: [0 {a,b,c}, 1 {a,b}, 3 {x,y}, 2 {a}].
	// A full scan pairs 0 with 3 (union 5); a window of 1 only sees 1.
	store := newStore(P("a", "b", "c"), P("a", "b"), P("a"), P("x", "y"))

	full := Build(store, Options{})
	assert.Equal(t, []int{0, 3}, full[0].Paintings)

	windowed := Build(store, Options{PairWindow: 1})
	assert.Equal(t, []int{0, 1}, windowed[0].Paintings)
	assertPartition(t, store, windowed)
}

func TestPairPortraits_Metrics(t *testing.T) {
	// Sorted pool: [1 {c,d,e,f,g}, 0 {a,b,c,d}, 2 {x,y}]; front is 1.
	// union:    0 -> 7, 2 -> 7, first seen wins => 0.
	// distinct: 0 -> 5, 2 -> 7 => 2.
	store := newStore(P("a", "b", "c", "d"), P("c", "d", "e", "f", "g"), P("x", "y"))

	assert.Equal(t, []int{1, 0}, Build(store, Options{Metric: PairUnion})[0].Paintings)
	assert.Equal(t, []int{1, 2}, Build(store, Options{Metric: PairDistinct})[0].Paintings)
	assert.Equal(t, []int{1, 0}, Build(store, Options{})[0].Paintings, "empty metric means union")
}

func TestBuild_RareTagLandscapes(t *testing.T) {
	// Frequencies: a=3, b=2, c=1. Rarest first: c (painting 2), then b
	// (painting 1; 2 already used), then a (painting 0). Painting 3 has no
	// tags and is appended last.
	store := newStore(L("a"), L("a", "b"), L("a", "b", "c"), L())
	frames := Build(store, Options{Landscapes: LandscapeRareTags})

	assert.Equal(t, [][]int{{2}, {1}, {0}, {3}}, Indices(frames))
	assertPartition(t, store, frames)
}

func TestBuild_Deterministic(t *testing.T) {
	store := newStore(P("a", "b"), P("c"), L("d"), P("a", "e"), P("f", "g", "h"), L("a"))
	first := Indices(Build(store, Options{}))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Indices(Build(store, Options{})))
	}
}

func TestFromIndices(t *testing.T) {
	store := newStore(L("a"), P("b"), P("c"), P("d"))

	t.Run("valid", func(t *testing.T) {
		frames, err := FromIndices(store, [][]int{{3}, {0}, {2, 1}})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{3}, {0}, {2, 1}}, Indices(frames))
		assert.Equal(t, 2, frames[2].Tags.Len())
	})

	invalid := []struct {
		name   string
		groups [][]int
	}{
		{"empty group", [][]int{{}, {0}, {1, 2}, {3}}},
		{"triple", [][]int{{0}, {1, 2, 3}}},
		{"out of range", [][]int{{0}, {1, 2}, {4}}},
		{"negative", [][]int{{-1}, {0}, {1, 2}, {3}}},
		{"duplicate", [][]int{{0}, {1, 2}, {3}, {3}}},
		{"missing", [][]int{{0}, {1, 2}}},
		{"paired landscape", [][]int{{0, 1}, {2, 3}}},
		{"two single portraits", [][]int{{0}, {1}, {2}, {3}}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromIndices(store, tc.groups)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.ErrCodeInvalidSolution), "got %v", err)
		})
	}

	t.Run("even portraits must pair", func(t *testing.T) {
		even := newStore(P("a"), P("b"))
		_, err := FromIndices(even, [][]int{{0}, {1}})
		assert.Error(t, err)
	})
}

func TestPaintingCount(t *testing.T) {
	store := newStore(L("a"), P("b"), P("c"))
	assert.Equal(t, 3, PaintingCount(Build(store, Options{})))
}
