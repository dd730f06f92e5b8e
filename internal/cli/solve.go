package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/frame"
	fgio "github.com/matzehuels/frameglass/pkg/io"
	"github.com/matzehuels/frameglass/pkg/pipeline"
)

// stdio names standard input or output in path arguments.
const stdio = "-"

// solveOpts holds the flags of the solve command.
type solveOpts struct {
	output  string
	noCache bool
	json    bool
	summary bool
	pipe    pipeline.Options
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Group and order paintings into a slideshow",
		Long: `Solve reads a painting collection, groups the paintings into frameglasses
and orders them to maximize the total satisfaction between neighbours.

The result is written as a solution file (one frameglass per line) next to
the input unless -o is given. Use "-" to read from stdin or write to stdout.`,
		Example: `  frameglass solve a_example.txt
  frameglass solve big.txt --chunk-size 2000 --workers 8
  frameglass solve big.txt --strategy heap --json -o big.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applySolveConfig(cmd, &opts.pipe)
			return c.runSolve(cmd.Context(), args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default <input>.out, \"-\" for stdout)")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the solution cache")
	f.BoolVar(&opts.json, "json", false, "write the solution as JSON")
	f.BoolVar(&opts.summary, "summary", false, "print a per-stage summary table")
	f.BoolVar(&opts.pipe.Refresh, "refresh", false, "recompute and overwrite any cached solution")
	addBuildFlags(cmd, &opts.pipe)
	addOrderFlags(cmd, &opts.pipe)

	return cmd
}

// addBuildFlags registers the frameglass building flags shared by solve and graph.
func addBuildFlags(cmd *cobra.Command, o *pipeline.Options) {
	f := cmd.Flags()
	f.IntVar(&o.PairWindow, "pair-window", 0, "portrait pairing scan window (0 = all)")
	f.StringVar(&o.PairMetric, "pair-metric", pipeline.DefaultPairMetric,
		"portrait pairing metric: "+strings.Join(frame.PairMetrics, ", "))
	f.StringVar(&o.Landscapes, "landscapes", pipeline.DefaultLandscapes,
		"landscape order: "+strings.Join(frame.LandscapeOrders, ", "))
}

// addOrderFlags registers the sequence ordering flags.
func addOrderFlags(cmd *cobra.Command, o *pipeline.Options) {
	f := cmd.Flags()
	f.StringVarP(&o.Strategy, "strategy", "s", pipeline.DefaultStrategy,
		"ordering strategy: "+strings.Join(pipeline.Strategies, ", "))
	f.IntVar(&o.Window, "window", 0, "greedy candidate window (0 = whole pool)")
	f.IntVar(&o.ChunkSize, "chunk-size", 0, "order in parallel chunks of this size (0 = off)")
	f.IntVar(&o.Workers, "workers", 0, "parallel chunk workers (0 = number of CPUs)")
}

// applySolveConfig fills options from the config file for flags that were
// not set on the command line.
func (c *CLI) applySolveConfig(cmd *cobra.Command, o *pipeline.Options) {
	s := c.cfg.Solve
	f := cmd.Flags()
	setString := func(name string, dst *string, v string) {
		if v != "" && f.Lookup(name) != nil && !f.Changed(name) {
			*dst = v
		}
	}
	setInt := func(name string, dst *int, v int) {
		if v != 0 && f.Lookup(name) != nil && !f.Changed(name) {
			*dst = v
		}
	}
	setString("strategy", &o.Strategy, s.Strategy)
	setString("pair-metric", &o.PairMetric, s.PairMetric)
	setString("landscapes", &o.Landscapes, s.Landscapes)
	setInt("window", &o.Window, s.Window)
	setInt("pair-window", &o.PairWindow, s.PairWindow)
	setInt("chunk-size", &o.ChunkSize, s.ChunkSize)
	setInt("workers", &o.Workers, s.Workers)
}

// runSolve executes the solve pipeline and writes the solution.
func (c *CLI) runSolve(ctx context.Context, input string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return err
	}
	out := opts.output
	if out == "" {
		out = defaultOutputPath(input, opts.json)
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Solving...")
	opts.pipe.Logger = logger
	opts.pipe.Progress = progressReporter(spinner)
	spinner.Start()

	result, err := runner.Execute(ctx, data, opts.pipe)
	if err != nil {
		if spinner.Cancelled() && errors.Is(ctx.Err(), context.Canceled) {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Solve failed")
		return err
	}
	spinner.Stop()

	if err := writeResult(result, out, opts.json); err != nil {
		return err
	}
	if out == stdio {
		return nil
	}

	printSuccess("Score %s", StyleNumber.Render(fmt.Sprint(result.Score)))
	printStats(result.Stats.Paintings, result.Stats.Frames, result.CacheInfo.OrderHit)
	printFile(out)
	if opts.summary {
		fmt.Println(summaryTable(result))
	}
	if !opts.json {
		printNextStep("Check it", fmt.Sprintf("frameglass score %s %s", input, out))
	}
	return nil
}

// progressReporter returns a progress callback that updates spinner with
// the percentage of frameglasses placed.
func progressReporter(s *Spinner) func(placed, total int) {
	last := -1
	return func(placed, total int) {
		if total == 0 {
			return
		}
		pct := placed * 100 / total
		if pct == last {
			return
		}
		last = pct
		s.Update(fmt.Sprintf("Ordering... %d%%", pct))
	}
}

// writeResult writes the solved sequence to path in text or JSON form.
func writeResult(res *pipeline.Result, path string, asJSON bool) error {
	groups := frame.Indices(res.Sequence)
	if asJSON {
		sol := fgio.Solution{RunID: res.RunID, Score: res.Score, Frames: groups}
		if path == stdio {
			return fgio.WriteJSON(sol, os.Stdout)
		}
		return fgio.ExportJSON(sol, path)
	}
	if path == stdio {
		return fgio.WriteSolution(groups, os.Stdout)
	}
	return fgio.ExportSolution(groups, path)
}

// defaultOutputPath derives the output file from the input file name.
func defaultOutputPath(input string, asJSON bool) string {
	if input == stdio {
		return stdio
	}
	ext := ".out"
	if asJSON {
		ext = ".json"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == stdio {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
