package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/frameglass/pkg/cache"
	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/observability"
	"github.com/matzehuels/frameglass/pkg/painting"
	"github.com/matzehuels/frameglass/pkg/score"
)

// cacheKeyType labels solution entries in cache hooks.
const cacheKeyType = "solution"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → build → order → score pipeline.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()

	result := &Result{
		RunID:     uuid.NewString(),
		InputHash: cache.Hash(input),
	}
	logger := r.Logger.With("run", result.RunID[:8])

	// Stage 1: Parse
	hooks.OnParseStart(ctx, len(input))
	parseStart := time.Now()
	store, err := Parse(input, opts)
	result.Stats.ParseTime = time.Since(parseStart)
	if err != nil {
		hooks.OnParseComplete(ctx, 0, result.Stats.ParseTime, err)
		return nil, fmt.Errorf("parse: %w", err)
	}
	hooks.OnParseComplete(ctx, store.Len(), result.Stats.ParseTime, nil)

	result.Store = store
	result.Stats.Paintings = store.Len()
	result.Stats.Landscapes, result.Stats.Portraits = store.Count()
	result.Stats.Tags = store.Dictionary().Len()

	logger.Info("parsed paintings",
		"paintings", result.Stats.Paintings,
		"landscapes", result.Stats.Landscapes,
		"portraits", result.Stats.Portraits,
		"tags", result.Stats.Tags,
		"duration", result.Stats.ParseTime)

	// Stage 2: Build
	buildStart := time.Now()
	frames := Build(store, opts)
	result.Frames = frames
	result.Stats.Frames = len(frames)
	result.Stats.BuildTime = time.Since(buildStart)
	hooks.OnBuildComplete(ctx, len(frames), result.Stats.BuildTime)

	logger.Info("built frameglasses",
		"frames", len(frames),
		"duration", result.Stats.BuildTime)

	// Stage 3: Order
	hooks.OnOrderStart(ctx, opts.Strategy, len(frames))
	orderStart := time.Now()
	seq, orderHit, err := r.OrderWithCacheInfo(ctx, store, frames, result.InputHash, opts)
	result.Stats.OrderTime = time.Since(orderStart)
	if err != nil {
		hooks.OnOrderComplete(ctx, opts.Strategy, 0, result.Stats.OrderTime, err)
		return nil, fmt.Errorf("order: %w", err)
	}
	result.Sequence = seq
	result.CacheInfo.OrderHit = orderHit

	// Stage 4: Score
	result.Summary = score.Summarize(seq)
	result.Score = result.Summary.Total
	hooks.OnOrderComplete(ctx, opts.Strategy, result.Score, result.Stats.OrderTime, nil)

	logger.Info("ordered frameglasses",
		"strategy", opts.Strategy,
		"score", result.Score,
		"cached", orderHit,
		"duration", result.Stats.OrderTime)

	return result, nil
}

// OrderWithCacheInfo orders frames with caching and returns cache hit info.
//
// inputHash identifies the input the frames were built from. A cached
// solution is used only if it is still a valid solution for store; otherwise
// it is discarded and the sequence recomputed. Caching is skipped when
// opts.Orderer is set, since a custom orderer cannot be keyed.
func (r *Runner) OrderWithCacheInfo(ctx context.Context, store *painting.Store, frames []frame.Frameglass, inputHash string, opts Options) ([]frame.Frameglass, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheable := opts.Orderer == nil
	cacheKey := r.Keyer.SolutionKey(inputHash, opts.SolutionKeyOpts())

	// Try cache first (unless refresh requested)
	if cacheable && !opts.Refresh {
		if seq, ok := r.cachedSolution(ctx, store, cacheKey); ok {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			return seq, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	}

	orderer, err := NewOrderer(opts)
	if err != nil {
		return nil, false, err
	}
	seq, err := orderer.Order(ctx, frames)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if cacheable {
		if data, err := json.Marshal(frame.Indices(seq)); err == nil {
			if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLSolution); err != nil {
				r.Logger.Warn("cache write failed", "err", err)
			} else {
				observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
			}
		}
	}

	return seq, false, nil
}

// Order is a convenience wrapper that calls OrderWithCacheInfo and discards the cache hit info.
func (r *Runner) Order(ctx context.Context, store *painting.Store, frames []frame.Frameglass, inputHash string, opts Options) ([]frame.Frameglass, error) {
	seq, _, err := r.OrderWithCacheInfo(ctx, store, frames, inputHash, opts)
	return seq, err
}

func (r *Runner) cachedSolution(ctx context.Context, store *painting.Store, key string) ([]frame.Frameglass, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}

	var groups [][]int
	if err := json.Unmarshal(data, &groups); err != nil {
		r.Logger.Debug("discarding undecodable cached solution", "err", err)
		return nil, false
	}
	seq, err := frame.FromIndices(store, groups)
	if err != nil {
		r.Logger.Warn("discarding invalid cached solution", "err", err)
		return nil, false
	}
	return seq, true
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
