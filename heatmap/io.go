// SPDX-License-Identifier: MIT
// Package: filtra/heatmap
//
// io.go — the on-disk heat-map format.
//
// Format: a header line "min max", then one whitespace-separated row of
// intensities per grid row. All rows must have equal length.

package heatmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Read parses a heat map from r.
func Read(r io.Reader) (*HeatMap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	header, err := nextLine(sc)
	if err == io.EOF {
		return nil, fmt.Errorf("Read: missing header: %w", ErrBadFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Read: header: %w", err)
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("Read: header needs 2 values, got %d: %w", len(header), ErrBadFormat)
	}
	min, max := header[0], header[1]
	if min >= max {
		return nil, fmt.Errorf("Read: range [%g,%g]: %w", min, max, ErrBadFormat)
	}

	var rows [][]float64
	for {
		row, errLine := nextLine(sc)
		if errLine == io.EOF {
			break
		}
		if errLine != nil {
			return nil, fmt.Errorf("Read: row %d: %w", len(rows), errLine)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("Read: row %d has %d values, want %d: %w",
				len(rows), len(row), len(rows[0]), ErrBadFormat)
		}
		rows = append(rows, row)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Read: no grid rows: %w", ErrBadFormat)
	}

	grid := mat.NewDense(len(rows), len(rows[0]), nil)
	for i, row := range rows {
		grid.SetRow(i, row)
	}

	return &HeatMap{Min: min, Max: max, grid: grid}, nil
}

// Load reads a heat map from the file at path.
func Load(path string) (*HeatMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	h, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return h, nil
}

// Write serializes the heat map to w in the on-disk format.
func (h *HeatMap) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%g %g\n", h.Min, h.Max); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	rows, cols := h.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sep := " "
			if j == cols-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%g%s", h.grid.At(i, j), sep); err != nil {
				return fmt.Errorf("Write: %w", err)
			}
		}
	}

	return nil
}

// Save writes the heat map to the file at path.
func (h *HeatMap) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = h.Write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// nextLine returns the next non-empty, non-comment line parsed as floats,
// or an error at end of input.
func nextLine(sc *bufio.Scanner) ([]float64, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		out := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", f, ErrBadFormat)
			}
			out[i] = v
		}

		return out, nil
	}

	return nil, io.EOF
}
