package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/pipeline"
)

// Graph output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

var graphFormats = []string{formatDOT, formatSVG}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		output string
		format string
		opts   pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "graph <input>",
		Short: "Export the tag adjacency graph of the frameglasses",
		Long: `Graph builds the frameglasses of an input and links every two that share a
tag no other frameglass carries. This is the graph walked by the taggraph
strategy. The result is written as Graphviz DOT or rendered to SVG.`,
		Example: `  frameglass graph a_example.txt
  frameglass graph a_example.txt --format svg -o tags.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applySolveConfig(cmd, &opts)
			return c.runGraph(cmd.Context(), args[0], output, format, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>.<format>, \"-\" for stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: "+strings.Join(graphFormats, ", "))
	addBuildFlags(cmd, &opts)

	return cmd
}

// runGraph builds the tag graph and writes it in the requested format.
func (c *CLI) runGraph(ctx context.Context, input, output, format string, opts pipeline.Options) error {
	if err := apperr.ValidateChoice("format", format, graphFormats); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	data, err := readInput(input)
	if err != nil {
		return err
	}
	store, err := pipeline.Parse(data, opts)
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}
	g, labels, err := pipeline.BuildTagGraph(store, opts)
	if err != nil {
		return err
	}
	logger.Debug("built tag graph", "nodes", g.Len(), "edges", g.EdgeCount(), "components", g.Components())

	var out []byte
	switch format {
	case formatSVG:
		spinner := newSpinnerWithContext(ctx, "Rendering SVG...")
		spinner.Start()
		out, err = g.RenderSVG(ctx, labels)
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	default:
		out = []byte(g.ToDOT(labels))
	}

	if output == "" {
		output = stdio
		if input != stdio {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
		}
	}
	if output == stdio {
		_, err := os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Tag graph")
	printDetail("%d nodes · %d edges · %d components", g.Len(), g.EdgeCount(), g.Components())
	printFile(output)
	return nil
}
