package links

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/linkstash/linkstash/internal/utils"
)

// parseXLSX reads the first sheet of a spreadsheet whose first row is a
// header, mapping each data row through the alias table.
func parseXLSX(r io.Reader) ([]Candidate, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer utils.Close(f)

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
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
