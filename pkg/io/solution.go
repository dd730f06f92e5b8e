package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperr "github.com/matzehuels/frameglass/pkg/errors"
)

// WriteSolution writes frameglass groups to w in solution format.
func WriteSolution(groups [][]int, w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := strconv.AppendInt(nil, int64(len(groups)), 10)
	buf = append(buf, '\n')
	bw.Write(buf)

	for _, g := range groups {
		buf = buf[:0]
		for i, idx := range g {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(idx), 10)
		}
		buf = append(buf, '\n')
		// bufio.Writer errors are sticky and surface in Flush.
		bw.Write(buf)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportSolution writes frameglass groups to a file at path.
func ExportSolution(groups [][]int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteSolution(groups, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadSolution parses a solution from r and returns the painting indices of
// each frameglass in order. It checks the format only; use frame.FromIndices
// to check the groups against a painting collection.
//
// Unlike painting input, a solution is expected to be machine-written, so a
// count mismatch or a non-numeric index is an INVALID_SOLUTION error.
func ReadSolution(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	declared := -1
	var groups [][]int
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
				return nil, apperr.Wrap(apperr.ErrCodeInvalidSolution, err, "line %d", lineNo)
			}
			declared = n
			groups = make([][]int, 0, n)
			continue
		}

		group := make([]int, len(fields))
		for i, f := range fields {
			idx, err := strconv.Atoi(f)
			if err != nil {
				return nil, apperr.New(apperr.ErrCodeInvalidSolution, "line %d: invalid painting index %q", lineNo, f)
			}
			group[i] = idx
		}
		groups = append(groups, group)
	}
	if err := sc.Err(); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidSolution, err, "read solution")
	}

	if declared < 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidSolution, "empty solution")
	}
	if declared != len(groups) {
		return nil, apperr.New(apperr.ErrCodeInvalidSolution, "header declares %d frameglasses but %d were read", declared, len(groups))
	}
	return groups, nil
}

// ImportSolution reads a solution from the file at path.
func ImportSolution(path string) ([][]int, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	groups, err := ReadSolution(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return groups, nil
}
