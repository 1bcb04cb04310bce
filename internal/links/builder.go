package links

import (
	"time"

	"github.com/google/uuid"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/logger"
)

// Input holds the raw fields for a single link add. Callers validate
// that URL is non-empty before getting here.
type Input struct {
	URL         string
	Title       string
	Description string
	Tags        []string
	Priority    domain.Priority
	Number      int
}

// Builder constructs canonical records from raw fields. It is
// persistence-agnostic: where the result ends up is the caller's choice.
type Builder struct {
	log logger.Logger
}

func NewBuilder(log logger.Logger) *Builder {
	return &Builder{log: log}
}

// SaveLink appends one new record built from in to ds and returns the
// resulting dataset. ds itself is never mutated. The record's duplicate
// flag is computed here, once, against the URLs already in ds.
//
// The operation is all-or-nothing: if anything goes wrong internally
// the error is logged and the original dataset is returned unchanged.
func (b *Builder) SaveLink(ds domain.Dataset, in Input) (out domain.Dataset) {
	out = ds
	defer func() {
		if r := recover(); r != nil {
			b.log.Errorf("save link failed: %v", r)
			out = ds
		}
	}()

	now := time.Now()
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityLow
	}
	number := in.Number
	if number < 0 {
		number = 0
	}

	record := domain.Record{
		ID:          uuid.NewString(),
		URL:         in.URL,
		Title:       in.Title,
		Description: in.Description,
		Tags:        domain.NormalizeTags(in.Tags),
		Priority:    priority,
		Number:      number,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsDuplicate: ds.HasURL(in.URL),
	}

	b.log.Debug("link saved",
		logger.String("url", in.URL),
		logger.Bool("duplicate", record.IsDuplicate))

	return ds.Append(record)
}
