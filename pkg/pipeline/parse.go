package pipeline

import (
	"bytes"

	fgio "github.com/matzehuels/frameglass/pkg/io"
	"github.com/matzehuels/frameglass/pkg/painting"
)

// Parse reads a painting collection from input.
// Recoverable inconsistencies are logged as warnings on opts.Logger.
func Parse(input []byte, opts Options) (*painting.Store, error) {
	return fgio.ReadPaintings(bytes.NewReader(input), readOptions(opts))
}

// readOptions creates io.ReadOptions from pipeline options.
func readOptions(opts Options) fgio.ReadOptions {
	var ro fgio.ReadOptions
	if opts.Logger != nil {
		ro.Warn = func(format string, args ...any) {
			opts.Logger.Warnf(format, args...)
		}
	}
	return ro
}
