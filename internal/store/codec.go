package store

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/utils"
)

// timeLayout is the timestamp format used inside blobs.
const timeLayout = "2006-01-02 15:04:05"

const sheetName = "Sheet1"

// blobColumns is the fixed column order of a persisted partition.
var blobColumns = []string{
	"link_id", "url", "title", "description", "tags",
	"created_at", "updated_at", "priority", "number", "is_duplicate",
}

// exportColumns is the column order of a user-facing export, with a
// leading sequence number and timestamps moved after the grouping
// fields.
var exportColumns = []string{
	"sequence_number", "link_id", "url", "title", "description", "tags",
	"priority", "number", "created_at", "updated_at", "is_duplicate",
}

// EncodeDataset serializes ds to an xlsx blob with the fixed column
// order. The tags set is flattened to a comma-joined string.
func EncodeDataset(ds domain.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer utils.Close(f)

	header := make([]interface{}, len(blobColumns))
	for i, c := range blobColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range ds.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{
			r.ID,
			r.URL,
			r.Title,
			r.Description,
			strings.Join(r.Tags, ", "),
			r.CreatedAt.Format(timeLayout),
			r.UpdatedAt.Format(timeLayout),
			string(r.Priority),
			r.Number,
			r.IsDuplicate,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeDataset parses a partition blob back into a Dataset. The
// comma-joined tags cell is split back into the canonical ordered set.
func DecodeDataset(data []byte) (domain.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open partition blob: %w", err)
	}
	defer utils.Close(f)

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read partition rows: %w", err)
	}
	if len(rows) < 2 {
		return domain.Dataset{}, nil
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	records := make([]domain.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		get := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		if get("url") == "" && get("link_id") == "" {
			continue // blank padding row
		}

		number, _ := strconv.Atoi(get("number"))
		if number < 0 {
			number = 0
		}

		records = append(records, domain.Record{
			ID:          get("link_id"),
			URL:         get("url"),
			Title:       get("title"),
			Description: get("description"),
			Tags:        domain.NormalizeTags([]string{get("tags")}),
			Priority:    domain.ParsePriority(get("priority")),
			Number:      number,
			CreatedAt:   parseTime(get("created_at")),
			UpdatedAt:   parseTime(get("updated_at")),
			IsDuplicate: parseBool(get("is_duplicate")),
		})
	}

	return domain.NewDataset(records), nil
}

// ExportDataset renders ds as a user-facing xlsx download: sequence
// numbers in the first column and url cells rendered as hyperlinks.
func ExportDataset(ds domain.Dataset) ([]byte, error) {
	f := excelize.NewFile()
	defer utils.Close(f)

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, r := range ds.Records() {
		rowNum := i + 2
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		row := []interface{}{
			i + 1,
			r.ID,
			r.URL,
			r.Title,
			r.Description,
			strings.Join(r.Tags, ", "),
			string(r.Priority),
			r.Number,
			r.CreatedAt.Format(timeLayout),
			r.UpdatedAt.Format(timeLayout),
			r.IsDuplicate,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", rowNum, err)
		}

		urlCell, err := excelize.CoordinatesToCellName(3, rowNum)
		if err != nil {
			return nil, fmt.Errorf("failed to compute url cell: %w", err)
		}
		if err := f.SetCellHyperLink(sheetName, urlCell, r.URL, "External"); err != nil {
			return nil, fmt.Errorf("failed to set hyperlink on row %d: %w", rowNum, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return buf.Bytes(), nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	return err == nil && b
}
