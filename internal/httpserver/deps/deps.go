package deps

import (
	"time"

	"github.com/linkstash/linkstash/internal/links"
	"github.com/linkstash/linkstash/internal/logger"
	"github.com/linkstash/linkstash/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Gateway  *store.Gateway        // persistence gateway (remote + session cache)
	Builder  *links.Builder        // single-add record construction
	Importer *links.Importer       // bulk file ingestion
	Merger   *links.Merger         // delete-by-id
	Fetcher  links.MetadataFetcher // page metadata enrichment for single adds
	Tagger   links.TagPredictor    // tag classification for single adds

	AdminPartition string // blob name of the admin collection
	GuestPrefix    string // blob name prefix for guest collections
}
