package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnParseStart(ctx, 1024)
	p.OnParseComplete(ctx, 80000, time.Second, nil)
	p.OnBuildComplete(ctx, 60000, time.Millisecond)
	p.OnOrderStart(ctx, "greedy", 60000)
	p.OnOrderComplete(ctx, "greedy", 1234, time.Minute, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "solution")
	c.OnCacheMiss(ctx, "solution")
	c.OnCacheSet(ctx, "solution", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testPipelineHooks{}
	SetPipelineHooks(h)

	Pipeline().OnOrderStart(context.Background(), "heap", 3)
	Pipeline().OnOrderComplete(context.Background(), "heap", 7, time.Millisecond, nil)

	if got := h.strategies(); len(got) != 2 || got[0] != "heap" || got[1] != "heap" {
		t.Errorf("strategies = %v, want [heap heap]", got)
	}
}

// Test implementations
type testPipelineHooks struct {
	NoopPipelineHooks
	mu   sync.Mutex
	seen []string
}

func (h *testPipelineHooks) OnOrderStart(_ context.Context, strategy string, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, strategy)
}

func (h *testPipelineHooks) OnOrderComplete(_ context.Context, strategy string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen = append(h.seen, strategy)
}

func (h *testPipelineHooks) strategies() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.seen...)
}

type testCacheHooks struct{ NoopCacheHooks }
