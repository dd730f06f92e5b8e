package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
	"github.com/matzehuels/frameglass/pkg/painting"
)

// maxLineSize bounds a single input line. Tag lists can be long.
const maxLineSize = 16 << 20

// ReadOptions configures [ReadPaintings].
type ReadOptions struct {
	// Warn receives recoverable inconsistencies. Nil discards them.
	Warn func(format string, args ...any)
}

func (o ReadOptions) warn(format string, args ...any) {
	if o.Warn != nil {
		o.Warn(format, args...)
	}
}

// ReadPaintings parses a painting collection from r.
//
// Declared counts that disagree with the data are reported through
// opts.Warn and the data present is used. Structural problems return an
// error with code MALFORMED_INPUT. ReadPaintings does not close r.
func ReadPaintings(r io.Reader, opts ReadOptions) (*painting.Store, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	store := painting.NewStore(nil)
	declared := -1
	lineNo := 0

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if declared < 0 {
			n, err := parseHeader(fields)
			if err != nil {
				return nil, apperr.Wrap(apperr.ErrCodeMalformedInput, err, "line %d", lineNo)
			}
			declared = n
			continue
		}

		if err := readPainting(store, fields, lineNo, opts); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeMalformedInput, err, "read input")
	}

	if declared >= 0 && declared != store.Len() {
		opts.warn("header declares %d paintings but %d were read", declared, store.Len())
	}
	return store, nil
}

func parseHeader(fields []string) (int, error) {
	if len(fields) != 1 {
		return 0, fmt.Errorf("header must be a single count, got %q", strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid painting count %q", fields[0])
	}
	return n, nil
}

func readPainting(store *painting.Store, fields []string, lineNo int, opts ReadOptions) error {
	kind, err := painting.ParseKind(fields[0])
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeMalformedInput, err, "line %d", lineNo)
	}

	if len(fields) < 2 {
		opts.warn("line %d: missing tag count, painting has no tags", lineNo)
		store.Add(kind, nil)
		return nil
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return apperr.New(apperr.ErrCodeMalformedInput, "line %d: invalid tag count %q", lineNo, fields[1])
	}

	names := fields[2:]
	if len(names) != n {
		opts.warn("line %d: declares %d tags but has %d", lineNo, n, len(names))
	}
	store.Add(kind, names)
	return nil
}

// ImportPaintings reads a painting collection from the file at path.
// A missing file returns an error with code FILE_NOT_FOUND.
func ImportPaintings(path string, opts ReadOptions) (*painting.Store, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	store, err := ReadPaintings(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
