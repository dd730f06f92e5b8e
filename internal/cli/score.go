package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	fgio "github.com/matzehuels/frameglass/pkg/io"
	"github.com/matzehuels/frameglass/pkg/pipeline"
)

// scoreCommand creates the score command.
func (c *CLI) scoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <input> <solution>",
		Short: "Validate a solution and print its score",
		Long: `Score checks that a solution file uses every painting of the input exactly
once, with landscapes alone and portraits in pairs, and prints the total
satisfaction of the sequence.`,
		Example: `  frameglass score a_example.txt a_example.out`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScore(cmd.Context(), args[0], args[1])
		},
	}
}

// runScore parses input and solution, validates the pairing and prints the summary.
func (c *CLI) runScore(ctx context.Context, input, solution string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := readInput(input)
	if err != nil {
		return err
	}
	store, err := pipeline.Parse(data, pipeline.Options{Logger: logger})
	if err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}
	groups, err := fgio.ImportSolution(solution)
	if err != nil {
		return err
	}

	eval, err := pipeline.Evaluate(store, groups)
	if err != nil {
		printError("Invalid solution")
		return err
	}
	prog.done("Scored solution")

	s := eval.Summary
	printSuccess("Valid solution")
	printKeyValue("Score", StyleNumber.Render(strconv.Itoa(s.Total)))
	printKeyValue("Frames", strconv.Itoa(len(eval.Sequence)))
	printKeyValue("Transitions", strconv.Itoa(s.Transitions))
	printKeyValue("Zero", strconv.Itoa(s.Zero))
	printKeyValue("Best", strconv.Itoa(s.Max))
	return nil
}
