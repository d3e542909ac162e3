// Package pointcloud: the OFF reader.
package pointcloud

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrBadOFF indicates malformed OFF input.
var ErrBadOFF = errors.New("pointcloud: malformed OFF input")

// ReadOFF parses the vertex block of an OFF file from r.
//
// Expected layout: an "OFF" magic line, a "nv nf ne" counts line, then nv
// vertex lines whose first three fields are the x y z coordinates. Faces
// and edges are not read. Lines starting with '#' and blank lines are
// skipped anywhere.
func ReadOFF(r io.Reader) ([]r3.Vec, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	magic, err := nextFields(sc)
	if err != nil {
		return nil, fmt.Errorf("ReadOFF: missing magic: %w", ErrBadOFF)
	}
	if len(magic) != 1 || magic[0] != "OFF" {
		return nil, fmt.Errorf("ReadOFF: magic %q: %w", strings.Join(magic, " "), ErrBadOFF)
	}

	counts, err := nextFields(sc)
	if err != nil || len(counts) != 3 {
		return nil, fmt.Errorf("ReadOFF: counts line: %w", ErrBadOFF)
	}
	nv, err := strconv.Atoi(counts[0])
	if err != nil || nv < 0 {
		return nil, fmt.Errorf("ReadOFF: vertex count %q: %w", counts[0], ErrBadOFF)
	}

	points := make([]r3.Vec, 0, nv)
	for i := 0; i < nv; i++ {
		fields, errLine := nextFields(sc)
		if errLine != nil {
			return nil, fmt.Errorf("ReadOFF: vertex %d of %d missing: %w", i, nv, ErrBadOFF)
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("ReadOFF: vertex %d has %d fields: %w", i, len(fields), ErrBadOFF)
		}
		var xyz [3]float64
		for j := 0; j < 3; j++ {
			v, errNum := strconv.ParseFloat(fields[j], 64)
			if errNum != nil {
				return nil, fmt.Errorf("ReadOFF: vertex %d field %q: %w", i, fields[j], ErrBadOFF)
			}
			xyz[j] = v
		}
		points = append(points, r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadOFF: %w", err)
	}

	return points, nil
}

// ReadOFFFile reads the point cloud from the file at path.
func ReadOFFFile(path string) ([]r3.Vec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadOFFFile: %w", err)
	}
	defer f.Close()

	points, err := ReadOFF(f)
	if err != nil {
		return nil, fmt.Errorf("ReadOFFFile %s: %w", path, err)
	}

	return points, nil
}

// nextFields returns the fields of the next non-empty, non-comment line.
func nextFields(sc *bufio.Scanner) ([]string, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		return strings.Fields(line), nil
	}

	return nil, io.EOF
}
