package domain

import (
	"strings"
	"time"
)

// Priority is the user-assigned importance of a record.
type Priority string

const (
	PriorityLow       Priority = "Low"
	PriorityMedium    Priority = "Medium"
	PriorityHigh      Priority = "High"
	PriorityImportant Priority = "Important"
)

// ParsePriority maps free-form input to a Priority, defaulting to Low.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	case "important":
		return PriorityImportant
	default:
		return PriorityLow
	}
}

// Record represents one saved bookmark entry.
type Record struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, assigned once at creation.
	ID string

	// URL is the bookmarked address. Duplicate matching is exact-string
	// on this field; the core never normalizes scheme or case.
	URL string

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	// Title and Description come from the user or from metadata fetch.
	Title       string
	Description string

	// Tags is the canonical ordered set of category tags.
	// Serialization flattens it to a comma-joined string.
	Tags []string

	// Priority is the user-assigned importance.
	Priority Priority

	// Number is a free-form grouping key.
	Number int

	// ─────────────────────────────
	// Provenance
	// ─────────────────────────────

	// CreatedAt and UpdatedAt are set equal at creation.
	// Records are never edited, so they never diverge.
	CreatedAt time.Time
	UpdatedAt time.Time

	// IsDuplicate marks a URL that was already present in the dataset
	// the record was inserted into. Computed once, never re-evaluated.
	IsDuplicate bool
}

// NormalizeTags converts any ingested tag shape to the canonical
// ordered set: comma-joined strings are split, entries are trimmed,
// empties and repeats are dropped while preserving first-seen order.
func NormalizeTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, entry := range raw {
		for _, tag := range strings.Split(entry, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
