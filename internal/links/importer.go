package links

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/logger"
	"github.com/linkstash/linkstash/internal/metadata"
)

// MetadataFetcher enriches candidates that arrive without a title or
// description. Implementations never fail, only degrade.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) metadata.Metadata
}

// TagPredictor assigns one category tag to a candidate.
type TagPredictor interface {
	Predict(text, url string) string
}

// ProgressFunc receives the fraction of candidates handled so far.
// It reaches 1.0 on success and is reset to 0 when the import aborts.
type ProgressFunc func(fraction float64)

// ImportResult reports what a bulk import did.
type ImportResult struct {
	Dataset  domain.Dataset
	Appended int
	Skipped  int
}

// Importer turns an uploaded bookmark file into records: parse into
// candidates, enrich each, apply the duplicate policy, append in one
// batch. Parse failures abort before any dataset change; per-candidate
// enrichment failures only degrade that candidate.
type Importer struct {
	fetcher MetadataFetcher
	tagger  TagPredictor
	log     logger.Logger
}

func NewImporter(fetcher MetadataFetcher, tagger TagPredictor, log logger.Logger) *Importer {
	return &Importer{
		fetcher: fetcher,
		tagger:  tagger,
		log:     log,
	}
}

// ImportFile processes one uploaded file against ds and returns the new
// dataset. ds is never mutated; on error it is returned unchanged
// inside the zero-valued result.
func (imp *Importer) ImportFile(
	ctx context.Context,
	ds domain.Dataset,
	filename string,
	r io.Reader,
	policy DuplicatePolicy,
	progress ProgressFunc,
) (ImportResult, error) {
	if progress == nil {
		progress = func(float64) {}
	}

	candidates, err := parseFile(filename, r)
	if err != nil {
		return ImportResult{Dataset: ds}, err
	}
	if len(candidates) == 0 {
		return ImportResult{Dataset: ds}, ErrNoCandidates
	}

	// Running URL set seeded from the existing dataset, so duplicates
	// within the batch are caught too, not only against ds.
	seen := ds.URLSet()
	total := len(candidates)
	now := time.Now()

	records := make([]domain.Record, 0, total)
	skipped := 0

	for i, cand := range candidates {
		cand = imp.enrich(ctx, cand)

		isDuplicate := seen[cand.URL]
		if isDuplicate && policy == PolicySkip {
			skipped++
			progress(float64(i+1) / float64(total))
			continue
		}

		records = append(records, domain.Record{
			ID:          uuid.NewString(),
			URL:         cand.URL,
			Title:       cand.Title,
			Description: cand.Description,
			Tags:        cand.Tags,
			Priority:    cand.Priority,
			Number:      cand.Number,
			CreatedAt:   now,
			UpdatedAt:   now,
			IsDuplicate: isDuplicate,
		})
		seen[cand.URL] = true
		progress(float64(i+1) / float64(total))
	}

	if len(records) == 0 {
		progress(0) // reset: the batch aborted, nothing was committed
		return ImportResult{Dataset: ds}, ErrNoNewRecords
	}

	imp.log.Info("bookmark file imported",
		logger.String("file", filename),
		logger.Int("appended", len(records)),
		logger.Int("skipped", skipped))

	return ImportResult{
		Dataset:  ds.Append(records...),
		Appended: len(records),
		Skipped:  skipped,
	}, nil
}

// enrich fills missing title/description from page metadata and assigns
// a tag when the file did not supply one. Fetch and classification are
// best-effort; a candidate that cannot be enriched goes through as-is.
func (imp *Importer) enrich(ctx context.Context, cand Candidate) Candidate {
	if cand.Title == "" || cand.Description == "" {
		meta := imp.fetcher.Fetch(ctx, cand.URL)
		if cand.Title == "" {
			cand.Title = meta.Title
		}
		if cand.Description == "" {
			cand.Description = meta.Description
		}
		if len(cand.Tags) == 0 && len(meta.TagsHint) > 0 {
			cand.Tags = domain.NormalizeTags(meta.TagsHint)
		}
	}

	if len(cand.Tags) == 0 {
		text := strings.TrimSpace(cand.Title + " " + cand.Description)
		cand.Tags = []string{imp.tagger.Predict(text, cand.URL)}
	}
	return cand
}

// parseFile dispatches on the file extension.
func parseFile(filename string, r io.Reader) ([]Candidate, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return parseXLSX(r)
	case ".csv":
		return parseDelimited(r, ',')
	case ".tsv", ".txt":
		return parseDelimited(r, '\t')
	case ".html", ".htm":
		return parseBookmarkHTML(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}
