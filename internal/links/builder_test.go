package links

import (
	"testing"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/logger"
)

func TestSaveLinkAppendsOneRecord(t *testing.T) {
	b := NewBuilder(logger.Nop())
	ds := domain.Dataset{}

	out := b.SaveLink(ds, Input{
		URL:         "https://a.com",
		Title:       "A",
		Description: "desc",
		Tags:        []string{"News"},
		Priority:    domain.PriorityLow,
	})

	if out.Len() != 1 {
		t.Fatalf("Len() = %v, want 1", out.Len())
	}
	rec := out.Records()[0]
	if rec.IsDuplicate {
		t.Error("IsDuplicate = true, want false for a fresh URL")
	}
	if rec.ID == "" {
		t.Error("ID not assigned")
	}
	if rec.CreatedAt.IsZero() || !rec.CreatedAt.Equal(rec.UpdatedAt) {
		t.Error("CreatedAt and UpdatedAt must be set and equal at creation")
	}
	if ds.Len() != 0 {
		t.Error("input dataset was mutated")
	}
}

func TestSaveLinkFlagsDuplicate(t *testing.T) {
	b := NewBuilder(logger.Nop())
	ds := domain.Dataset{}.Append(domain.Record{ID: "1", URL: "https://a.com"})

	out := b.SaveLink(ds, Input{URL: "https://a.com"})

	if out.Len() != ds.Len()+1 {
		t.Fatalf("Len() = %v, want %v", out.Len(), ds.Len()+1)
	}
	last := out.Records()[out.Len()-1]
	if !last.IsDuplicate {
		t.Error("IsDuplicate = false, want true for an existing URL")
	}
}

func TestSaveLinkDuplicateMatchIsExact(t *testing.T) {
	b := NewBuilder(logger.Nop())
	ds := domain.Dataset{}.Append(domain.Record{ID: "1", URL: "https://a.com"})

	out := b.SaveLink(ds, Input{URL: "https://A.com"})

	last := out.Records()[out.Len()-1]
	if last.IsDuplicate {
		t.Error("duplicate matching must be exact-string, not case-folded")
	}
}

func TestSaveLinkDefaults(t *testing.T) {
	b := NewBuilder(logger.Nop())

	out := b.SaveLink(domain.Dataset{}, Input{URL: "https://a.com", Number: -4})

	rec := out.Records()[0]
	if rec.Priority != domain.PriorityLow {
		t.Errorf("Priority = %v, want Low", rec.Priority)
	}
	if rec.Number != 0 {
		t.Errorf("Number = %v, want 0", rec.Number)
	}
	if len(rec.Tags) != 0 {
		t.Errorf("Tags = %v, want empty", rec.Tags)
	}
}

func TestSaveLinkAssignsUniqueIDs(t *testing.T) {
	b := NewBuilder(logger.Nop())

	ds := domain.Dataset{}
	for i := 0; i < 5; i++ {
		ds = b.SaveLink(ds, Input{URL: "https://a.com"})
	}

	seen := make(map[string]bool)
	for _, r := range ds.Records() {
		if seen[r.ID] {
			t.Fatalf("duplicate ID %v", r.ID)
		}
		seen[r.ID] = true
	}
}
