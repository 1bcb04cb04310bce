package metadata

// Metadata holds the best-effort page information used to enrich a
// record when the user did not supply a title or description.
type Metadata struct {
	Title       string
	Description string
	TagsHint    []string // candidate tags derived from meta keywords
}

// Empty reports whether the fetch produced nothing usable.
func (m Metadata) Empty() bool {
	return m.Title == "" && m.Description == "" && len(m.TagsHint) == 0
}
