package links

import (
	"encoding/csv"
	"fmt"
	"io"
)

// parseDelimited reads a delimited text file (comma or tab) whose first
// row is a header, mapping each data row through the alias table.
func parseDelimited(r io.Reader, comma rune) ([]Candidate, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // rows may be ragged
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited file: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil // header only, or empty
	}

	idx := columnIndex(rows[0])
	candidates := make([]Candidate, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if cand, ok := candidateFromRow(idx, row, i+1); ok {
			candidates = append(candidates, cand)
		}
	}
	return candidates, nil
}
