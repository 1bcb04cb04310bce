package domain

import (
	"reflect"
	"testing"
)

func TestDatasetAppendLeavesOriginalUntouched(t *testing.T) {
	ds := NewDataset([]Record{{ID: "1", URL: "https://a.com"}})

	out := ds.Append(Record{ID: "2", URL: "https://b.com"})

	if ds.Len() != 1 {
		t.Errorf("original Len() = %v, want 1", ds.Len())
	}
	if out.Len() != 2 {
		t.Errorf("appended Len() = %v, want 2", out.Len())
	}
}

func TestDatasetRemoveByIDs(t *testing.T) {
	ds := NewDataset([]Record{
		{ID: "1", URL: "https://a.com"},
		{ID: "2", URL: "https://b.com"},
		{ID: "3", URL: "https://c.com"},
	})

	out := ds.RemoveByIDs(map[string]bool{"2": true})

	if out.Len() != 2 {
		t.Fatalf("Len() = %v, want 2", out.Len())
	}
	records := out.Records()
	if records[0].ID != "1" || records[1].ID != "3" {
		t.Errorf("RemoveByIDs did not preserve order: got %v, %v", records[0].ID, records[1].ID)
	}
	if ds.Len() != 3 {
		t.Errorf("original dataset mutated: Len() = %v, want 3", ds.Len())
	}
}

func TestDatasetURLSetIsExactMatch(t *testing.T) {
	ds := NewDataset([]Record{{ID: "1", URL: "https://A.com/"}})

	if !ds.HasURL("https://A.com/") {
		t.Error("HasURL() should match the exact string")
	}
	// No normalization: different case or missing slash is a different URL.
	if ds.HasURL("https://a.com/") {
		t.Error("HasURL() must not case-fold")
	}
	if ds.HasURL("https://A.com") {
		t.Error("HasURL() must not strip trailing slashes")
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "comma joined string is split",
			raw:  []string{"News, Tech"},
			want: []string{"News", "Tech"},
		},
		{
			name: "duplicates dropped, first-seen order kept",
			raw:  []string{"Tech", "News", "Tech"},
			want: []string{"Tech", "News"},
		},
		{
			name: "empties dropped",
			raw:  []string{"", " ", "News"},
			want: []string{"News"},
		},
		{
			name: "nil input",
			raw:  nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTags(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeTags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"Low", PriorityLow},
		{"medium", PriorityMedium},
		{"HIGH", PriorityHigh},
		{"Important", PriorityImportant},
		{"", PriorityLow},
		{"whatever", PriorityLow},
	}

	for _, tt := range tests {
		if got := ParsePriority(tt.in); got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
