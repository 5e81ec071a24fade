package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"collisions/internal/loader"
)

// writeOut dumps coll as JSON lines to path, or stdout for "-".
func writeOut(path string, coll *loader.Collisions) error {
	if path == "-" {
		return writeJSONLines(os.Stdout, coll)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("out: %w", err)
	}
	if err := writeJSONLines(f, coll); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("out: %w", err)
	}
	return nil
}

// writeJSONLines writes one serialized record per line.
func writeJSONLines(w io.Writer, coll *loader.Collisions) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i, c := range coll.All() {
		m, err := c.Serialize()
		if err != nil {
			return fmt.Errorf("out: record %d: %w", i, err)
		}
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("out: record %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("out: %w", err)
	}
	return nil
}
