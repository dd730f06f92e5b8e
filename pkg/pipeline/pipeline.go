// Package pipeline provides the solve pipeline shared by every frameglass
// entry point.
//
// # Architecture
//
// A run consists of four stages:
//
//  1. Parse: read the painting collection (package io)
//  2. Build: group paintings into frameglasses (package frame)
//  3. Order: arrange the frameglasses into a sequence (package sequence)
//  4. Score: compute the global satisfaction (package score)
//
// Ordering dominates the run time, so its result is cached by input hash
// and the options that affect it. Cached solutions are checked against the
// parsed input before they are used.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Strategy: pipeline.StrategyGreedy,
//	    Window:   500,
//	}
//	result, err := runner.Execute(ctx, input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Score)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/frameglass/pkg/cache"
	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/frame"
	"github.com/matzehuels/frameglass/pkg/painting"
	"github.com/matzehuels/frameglass/pkg/score"
	"github.com/matzehuels/frameglass/pkg/sequence"
)

// =============================================================================
// Default Values
// =============================================================================

// Strategy names accepted by Options.Strategy.
const (
	StrategyGreedy   = "greedy"
	StrategyHeap     = "heap"
	StrategyTagGraph = "taggraph"
)

const (
	// DefaultStrategy is the default ordering strategy.
	DefaultStrategy = StrategyGreedy

	// DefaultPairMetric is the default portrait pairing metric.
	DefaultPairMetric = string(frame.PairUnion)

	// DefaultLandscapes is the default landscape emission order.
	DefaultLandscapes = string(frame.LandscapeInput)
)

// Strategies lists the accepted ordering strategies.
var Strategies = []string{StrategyGreedy, StrategyHeap, StrategyTagGraph}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a solve run.
// Zero values select the defaults; the struct supports JSON serialization
// so it can be stored next to results.
type Options struct {
	// Build options
	PairWindow int    `json:"pair_window,omitempty"`
	PairMetric string `json:"pair_metric,omitempty"`
	Landscapes string `json:"landscapes,omitempty"`

	// Order options
	Strategy  string `json:"strategy,omitempty"`
	Window    int    `json:"window,omitempty"`     // greedy scan window, 0 = whole pool
	ChunkSize int    `json:"chunk_size,omitempty"` // 0 = no chunking
	Workers   int    `json:"workers,omitempty"`    // chunk workers, 0 = GOMAXPROCS
	Refresh   bool   `json:"refresh,omitempty"`    // ignore cached solutions

	// Runtime options (not serialized)
	Logger   *log.Logger           `json:"-"`
	Progress sequence.ProgressFunc `json:"-"`
	Orderer  sequence.Orderer      `json:"-"` // overrides Strategy; disables caching

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and JSON output.
	RunID string

	// InputHash is the content hash of the input.
	InputHash string

	// Store holds the parsed paintings.
	Store *painting.Store

	// Frames are the frameglasses in builder order.
	Frames []frame.Frameglass

	// Sequence is the ordered slideshow.
	Sequence []frame.Frameglass

	// Score is the global satisfaction of Sequence.
	Score int

	// Summary describes the transitions of Sequence.
	Summary score.Summary

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Paintings  int
	Landscapes int
	Portraits  int
	Tags       int
	Frames     int
	ParseTime  time.Duration
	BuildTime  time.Duration
	OrderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	OrderHit bool // Whether the sequence came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateStrategy checks that a strategy name is valid.
func ValidateStrategy(strategy string) error {
	return apperr.ValidateChoice("strategy", strategy, Strategies)
}

// ValidatePairMetric checks that a pair metric is valid.
func ValidatePairMetric(metric string) error {
	return apperr.ValidateChoice("pair metric", metric, frame.PairMetrics)
}

// ValidateLandscapes checks that a landscape order is valid.
func ValidateLandscapes(order string) error {
	return apperr.ValidateChoice("landscape order", order, frame.LandscapeOrders)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForOrder(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetBuildDefaults sets default values for frameglass building.
func (o *Options) SetBuildDefaults() {
	if o.PairMetric == "" {
		o.PairMetric = DefaultPairMetric
	}
	if o.Landscapes == "" {
		o.Landscapes = DefaultLandscapes
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForBuild validates and sets defaults for frameglass building.
func (o *Options) ValidateForBuild() error {
	o.SetBuildDefaults()
	if err := apperr.ValidateNonNegative("pair window", o.PairWindow); err != nil {
		return err
	}
	if err := ValidatePairMetric(o.PairMetric); err != nil {
		return err
	}
	return ValidateLandscapes(o.Landscapes)
}

// SetOrderDefaults sets default values for ordering.
func (o *Options) SetOrderDefaults() {
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForOrder validates and sets defaults for ordering.
func (o *Options) ValidateForOrder() error {
	o.SetOrderDefaults()
	if o.Orderer == nil {
		if err := ValidateStrategy(o.Strategy); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"window", o.Window},
		{"chunk size", o.ChunkSize},
		{"workers", o.Workers},
	} {
		if err := apperr.ValidateNonNegative(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// FrameOptions returns the builder options.
func (o *Options) FrameOptions() frame.Options {
	return frame.Options{
		PairWindow: o.PairWindow,
		Metric:     frame.PairMetric(o.PairMetric),
		Landscapes: frame.LandscapeOrder(o.Landscapes),
	}
}

// IsChunked reports whether ordering runs on chunks.
func (o *Options) IsChunked() bool {
	return o.ChunkSize > 0
}

// SolutionKeyOpts returns cache key options for the ordered solution.
func (o *Options) SolutionKeyOpts() cache.SolutionKeyOpts {
	return cache.SolutionKeyOpts{
		PairWindow: o.PairWindow,
		PairMetric: o.PairMetric,
		Landscapes: o.Landscapes,
		Strategy:   o.Strategy,
		Window:     o.Window,
		ChunkSize:  o.ChunkSize,
	}
}
