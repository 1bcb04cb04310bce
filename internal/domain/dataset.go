package domain

// Dataset is the ordered collection of records belonging to one
// partition or session. Mutations are functional: Append and RemoveByIDs
// return a new Dataset and leave the receiver untouched, so callers can
// safely keep the old value on failure.
type Dataset struct {
	records []Record
}

// NewDataset builds a Dataset from a slice of records, preserving order.
func NewDataset(records []Record) Dataset {
	return Dataset{records: records}
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns a copy of the underlying slice.
func (d Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Append returns a new Dataset with the given records added at the end.
func (d Dataset) Append(records ...Record) Dataset {
	out := make([]Record, 0, len(d.records)+len(records))
	out = append(out, d.records...)
	out = append(out, records...)
	return Dataset{records: out}
}

// RemoveByIDs returns a new Dataset without the records whose ID is in
// ids, preserving the relative order of the rest. Removal is strictly
// by ID, never by position.
func (d Dataset) RemoveByIDs(ids map[string]bool) Dataset {
	out := make([]Record, 0, len(d.records))
	for _, r := range d.records {
		if ids[r.ID] {
			continue
		}
		out = append(out, r)
	}
	return Dataset{records: out}
}

// URLSet returns the set of URLs present in the dataset.
// Membership is exact-string: no scheme, case or trailing-slash
// normalization is applied.
func (d Dataset) URLSet() map[string]bool {
	set := make(map[string]bool, len(d.records))
	for _, r := range d.records {
		set[r.URL] = true
	}
	return set
}

// HasURL reports whether url is already present (exact match).
func (d Dataset) HasURL(url string) bool {
	for _, r := range d.records {
		if r.URL == url {
			return true
		}
	}
	return false
}
