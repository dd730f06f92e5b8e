package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Solution is the JSON form of a solved run.
type Solution struct {
	RunID  string  `json:"run_id"`
	Score  int     `json:"score"`
	Frames [][]int `json:"frames"`
}

// WriteJSON encodes s as indented JSON and writes it to w.
func WriteJSON(s Solution, w io.Writer) error {
	if s.Frames == nil {
		s.Frames = [][]int{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes s to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(s Solution, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
