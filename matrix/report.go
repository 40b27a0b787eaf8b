// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strings"
)

const opWriteReport = "WriteReport"

// Report section headings and the explanatory notes appended after R.
const (
	reportSourceHeading = "Source matrix:\n"
	reportResultHeading = "\nResult matrix:\n"
	reportNotesHeading  = "\nNotes:\n"
	reportNoteRows      = "- The last column holds the number of negative elements in each row\n"
	reportNoteCols      = "- The last row holds the number of negative elements in each column\n"
	reportNoteTotal     = "- The bottom-right cell holds the total number of negative elements\n"
)

// reportCellWidth is the minimum right-aligned width of every printed cell.
const reportCellWidth = 4

// WriteReport writes a fixed-width text report of the source matrix X and
// its margin matrix R (as produced by NegativeMargins) to w.
//
// The report is assembled in memory and written with a single Write call, so
// w receives either the whole report or, on error, whatever it accepted.
//
// Errors:
//   - ErrNilMatrix if X or R is nil.
//   - ErrDimensionMismatch if R is not (r+1)×(c+1).
//   - Wrapped At errors and any error returned by w.
func WriteReport(w io.Writer, X, R Matrix) error {
	if err := ValidateNotNil(X); err != nil {
		return matrixErrorf(opWriteReport, err)
	}
	if err := ValidateNotNil(R); err != nil {
		return matrixErrorf(opWriteReport, err)
	}
	if err := ValidateMarginShape(X, R); err != nil {
		return matrixErrorf(opWriteReport, err)
	}

	var b strings.Builder
	b.WriteString(reportSourceHeading)
	if err := writeGrid(&b, X); err != nil {
		return matrixErrorf(opWriteReport, err)
	}
	b.WriteString(reportResultHeading)
	if err := writeGrid(&b, R); err != nil {
		return matrixErrorf(opWriteReport, err)
	}
	b.WriteString(reportNotesHeading)
	b.WriteString(reportNoteRows)
	b.WriteString(reportNoteCols)
	b.WriteString(reportNoteTotal)

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%s: write: %w", opWriteReport, err)
	}

	return nil
}

// writeGrid appends one line per row, cells right-aligned to reportCellWidth.
func writeGrid(b *strings.Builder, m Matrix) error {
	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintf(b, "%*s", reportCellWidth, formatCell(v))
		}
		b.WriteByte('\n')
	}

	return nil
}
