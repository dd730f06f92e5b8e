package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/frameglass/pkg/cache"
	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/sequence"
)

const (
	landscapesInput = "3\nL 2 a b\nL 2 b c\nL 1 d\n"
	portraitsInput  = "4\nP 1 a\nP 2 a b\nP 1 c\nP 2 c d\n"
)

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.data[key]
	return d, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) Close() error { return nil }

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func TestExecuteLandscapes(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), []byte(landscapesInput), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := [][]int{{0}, {1}, {2}}
	if got := frame.Indices(res.Sequence); !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
	if res.Stats.Paintings != 3 || res.Stats.Landscapes != 3 || res.Stats.Portraits != 0 {
		t.Errorf("unexpected stats: %+v", res.Stats)
	}
	if res.Stats.Tags != 4 {
		t.Errorf("tags = %d, want 4", res.Stats.Tags)
	}
	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.CacheInfo.OrderHit {
		t.Error("null cache should never hit")
	}
}

func TestExecutePortraits(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), []byte(portraitsInput), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// {a,b} pairs with {c,d}; {a} with {c}.
	want := [][]int{{1, 3}, {0, 2}}
	if got := frame.Indices(res.Frames); !reflect.DeepEqual(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}
	if res.Stats.Frames != 2 {
		t.Errorf("frame count = %d, want 2", res.Stats.Frames)
	}
}

func TestExecuteEmptyInput(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("empty input should be valid: %v", err)
	}
	if len(res.Sequence) != 0 || res.Score != 0 {
		t.Errorf("empty input: sequence %v, score %d", res.Sequence, res.Score)
	}
}

func TestExecuteMalformedInput(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), []byte("1\nQ 1 a\n"), Options{})
	if !apperr.Is(err, apperr.ErrCodeMalformedInput) {
		t.Errorf("error = %v, want MALFORMED_INPUT", err)
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), []byte(landscapesInput), Options{Strategy: "bogus"})
	if !apperr.Is(err, apperr.ErrCodeInvalidOption) {
		t.Errorf("error = %v, want INVALID_OPTION", err)
	}
}

func TestExecuteCacheRoundTrip(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	input := []byte("6\nL 2 a b\nP 2 b c\nP 1 c\nL 3 a c d\nP 2 d e\nP 1 a\n")

	first, err := r.Execute(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.OrderHit {
		t.Error("first run should miss")
	}
	if c.sets != 1 {
		t.Errorf("cache sets = %d, want 1", c.sets)
	}

	second, err := r.Execute(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.OrderHit {
		t.Error("second run should hit")
	}
	if !reflect.DeepEqual(frame.Indices(first.Sequence), frame.Indices(second.Sequence)) {
		t.Errorf("cached sequence differs: %v vs %v", frame.Indices(first.Sequence), frame.Indices(second.Sequence))
	}
	if first.Score != second.Score {
		t.Errorf("cached score %d, want %d", second.Score, first.Score)
	}

	// Different ordering options are cached separately.
	third, err := r.Execute(context.Background(), input, Options{Strategy: StrategyHeap})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.OrderHit {
		t.Error("different strategy should miss")
	}
}

func TestExecuteRefresh(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)
	input := []byte(landscapesInput)

	if _, err := r.Execute(context.Background(), input, Options{}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Execute(context.Background(), input, Options{Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.OrderHit {
		t.Error("refresh should bypass the cache")
	}
	if c.sets != 2 {
		t.Errorf("refresh should rewrite the entry, sets = %d", c.sets)
	}
}

func TestExecuteDiscardsInvalidCachedSolution(t *testing.T) {
	c := newMemCache()
	keyer := cache.NewDefaultKeyer()
	r := NewRunner(c, keyer, nil)
	input := []byte(landscapesInput)

	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	key := keyer.SolutionKey(cache.Hash(input), opts.SolutionKeyOpts())
	bad, _ := json.Marshal([][]int{{0}, {0}, {2}})
	c.data[key] = bad

	res, err := r.Execute(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.CacheInfo.OrderHit {
		t.Error("invalid cached solution must not count as a hit")
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}

	var groups [][]int
	if err := json.Unmarshal(c.data[key], &groups); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(groups, [][]int{{0}, {1}, {2}}) {
		t.Errorf("cache entry should be replaced, got %v", groups)
	}
}

func TestExecuteCustomOrdererSkipsCache(t *testing.T) {
	c := newMemCache()
	r := NewRunner(c, nil, nil)

	res, err := r.Execute(context.Background(), []byte(landscapesInput), Options{Orderer: sequence.TagGraph{}})
	if err != nil {
		t.Fatal(err)
	}
	if c.sets != 0 {
		t.Errorf("custom orderer results must not be cached, sets = %d", c.sets)
	}
	if len(res.Sequence) != 3 {
		t.Errorf("sequence length = %d, want 3", len(res.Sequence))
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(ctx, []byte(landscapesInput), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestExecuteStrategiesAgreeOnPartition(t *testing.T) {
	input := []byte("7\nL 2 a b\nP 2 b c\nP 1 c\nL 3 a c d\nP 2 d e\nP 1 a\nL 1 e\n")
	r := NewRunner(nil, nil, nil)

	for _, opts := range []Options{
		{Strategy: StrategyGreedy},
		{Strategy: StrategyGreedy, Window: 2},
		{Strategy: StrategyHeap},
		{Strategy: StrategyTagGraph},
		{Strategy: StrategyGreedy, ChunkSize: 2, Workers: 2},
		{PairMetric: "distinct", Landscapes: "rare-tags"},
	} {
		res, err := r.Execute(context.Background(), input, opts)
		if err != nil {
			t.Fatalf("Execute(%+v): %v", opts, err)
		}
		if n := frame.PaintingCount(res.Sequence); n != 7 {
			t.Errorf("Execute(%+v): %d paintings in sequence, want 7", opts, n)
		}
		if _, err := frame.FromIndices(res.Store, frame.Indices(res.Sequence)); err != nil {
			t.Errorf("Execute(%+v): invalid solution: %v", opts, err)
		}
	}
}

func TestEvaluate(t *testing.T) {
	store, err := Parse([]byte(landscapesInput), Options{})
	if err != nil {
		t.Fatal(err)
	}

	ev, err := Evaluate(store, [][]int{{0}, {1}, {2}})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Summary.Total != 1 || ev.Summary.Zero != 1 {
		t.Errorf("summary = %+v, want total 1 with one zero transition", ev.Summary)
	}

	if _, err := Evaluate(store, [][]int{{0}, {1}}); !apperr.Is(err, apperr.ErrCodeInvalidSolution) {
		t.Errorf("missing painting: error = %v, want INVALID_SOLUTION", err)
	}
}

func TestBuildTagGraph(t *testing.T) {
	store, err := Parse([]byte(portraitsInput), Options{})
	if err != nil {
		t.Fatal(err)
	}

	g, labels, err := BuildTagGraph(store, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 2 {
		t.Errorf("nodes = %d, want 2", g.Len())
	}
	// Frames {a,b,c,d} and {a,c}: a and c are held by exactly both.
	if g.EdgeCount() != 1 {
		t.Errorf("edges = %d, want 1", g.EdgeCount())
	}
	if !reflect.DeepEqual(labels, []string{"1+3", "0+2"}) {
		t.Errorf("labels = %v", labels)
	}
}
