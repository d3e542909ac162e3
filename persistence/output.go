// SPDX-License-Identifier: MIT
// Package: filtra/persistence
//
// output.go — the diagram writer.

package persistence

import (
	"fmt"
	"io"
)

// Fprint writes the diagram to w, one interval per line in the
// conventional format
//
//	p dim birth death
//
// where p is the field characteristic and essential classes print "inf"
// as their death value.
func Fprint(w io.Writer, d Diagram, characteristic int) error {
	for _, iv := range d {
		var err error
		if iv.Essential() {
			_, err = fmt.Fprintf(w, "%d %d %g inf\n", characteristic, iv.Dim, iv.Birth)
		} else {
			_, err = fmt.Fprintf(w, "%d %d %g %g\n", characteristic, iv.Dim, iv.Birth, iv.Death)
		}
		if err != nil {
			return fmt.Errorf("Fprint: %w", err)
		}
	}

	return nil
}
