package links

import (
	"strconv"
	"strings"

	"github.com/linkstash/linkstash/internal/domain"
)

// Candidate is the common shape every bulk format is normalized into
// before enrichment. Only URL is required.
type Candidate struct {
	URL         string
	Title       string
	Description string
	Tags        []string
	Priority    domain.Priority
	Number      int
}

// DuplicatePolicy is the batch-import choice for candidates whose URL
// already exists.
type DuplicatePolicy string

const (
	// PolicySkip drops duplicate candidates entirely.
	PolicySkip DuplicatePolicy = "skip"
	// PolicyKeepBoth appends duplicates with IsDuplicate set.
	PolicyKeepBoth DuplicatePolicy = "keep_both"
)

// ParsePolicy maps user input to a policy, defaulting to KeepBoth.
func ParsePolicy(s string) DuplicatePolicy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "skip", "skip_duplicates", "skip duplicates":
		return PolicySkip
	default:
		return PolicyKeepBoth
	}
}

// headerAliases maps lowercased column headers to canonical fields.
// Every tabular ingestion path goes through this one table; rows are
// never patched with defaults anywhere else.
var headerAliases = map[string]string{
	"url":  "url",
	"link": "url",
	"href": "url",

	"title": "title",
	"name":  "title",

	"description": "description",
	"desc":        "description",
	"notes":       "description",

	"tags":     "tags",
	"category": "tags",

	"priority": "priority",

	"number": "number",
	"no":     "number",
}

// columnIndex resolves a header row into canonical-field -> column
// position. Unrecognized headers are ignored.
func columnIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		field, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, taken := idx[field]; taken {
			continue // first matching column wins
		}
		idx[field] = i
	}
	return idx
}

// candidateFromRow maps one data row through the alias table into a
// Candidate. rowNum is the 1-based data row position, used as the
// default grouping number. Returns ok=false when the row has no URL.
func candidateFromRow(idx map[string]int, row []string, rowNum int) (Candidate, bool) {
	get := func(field string) string {
		i, ok := idx[field]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	url := get("url")
	if url == "" {
		return Candidate{}, false
	}

	number := rowNum
	if n, err := strconv.Atoi(get("number")); err == nil && n >= 0 {
		number = n
	}

	var tags []string
	if raw := get("tags"); raw != "" {
		tags = domain.NormalizeTags([]string{raw})
	}

	return Candidate{
		URL:         url,
		Title:       get("title"),
		Description: get("description"),
		Tags:        tags,
		Priority:    domain.ParsePriority(get("priority")),
		Number:      number,
	}, true
}
