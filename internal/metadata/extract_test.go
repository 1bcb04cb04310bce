package metadata

import (
	"reflect"
	"testing"
)

func TestExtractRichPage(t *testing.T) {
	page := []byte(`<html><head>
		<title>Raw Title</title>
		<meta property="og:title" content="OG Title">
		<meta property="og:description" content="OG description.">
		<meta name="keywords" content="golang, web, ai, bookmarks">
	</head><body><p>Body text.</p></body></html>`)

	m := Extract(page)

	if m.Title != "OG Title" {
		t.Errorf("Title = %q, want OG Title", m.Title)
	}
	if m.Description != "OG description." {
		t.Errorf("Description = %q, want OG description.", m.Description)
	}
	// "ai" and "web" are too short to be hints.
	want := []string{"golang", "bookmarks"}
	if !reflect.DeepEqual(m.TagsHint, want) {
		t.Errorf("TagsHint = %v, want %v", m.TagsHint, want)
	}
}

func TestExtractFallsBackToBasic(t *testing.T) {
	page := []byte(`<html><head>
		<title>Plain Title</title>
		<meta name="description" content="Plain description.">
	</head><body></body></html>`)

	m := Extract(page)

	if m.Title != "Plain Title" {
		t.Errorf("Title = %q, want Plain Title", m.Title)
	}
	if m.Description != "Plain description." {
		t.Errorf("Description = %q, want Plain description.", m.Description)
	}
}

func TestExtractArticleTextAsDescription(t *testing.T) {
	page := []byte(`<html><head><title>Story</title></head><body>
		<article><p>First paragraph of the story.</p><p>Second one.</p></article>
	</body></html>`)

	m := Extract(page)

	if m.Description != "First paragraph of the story. Second one." {
		t.Errorf("Description = %q", m.Description)
	}
}

func TestExtractDescriptionTruncated(t *testing.T) {
	long := make([]byte, 0, 1024)
	long = append(long, []byte(`<html><body><p>`)...)
	for i := 0; i < 100; i++ {
		long = append(long, []byte("word here ")...)
	}
	long = append(long, []byte(`</p></body></html>`)...)

	m := Extract(long)

	if got := len([]rune(m.Description)); got > descriptionLimit {
		t.Errorf("Description length = %v, want <= %v", got, descriptionLimit)
	}
}

func TestExtractGarbageInput(t *testing.T) {
	// html.Parse is lenient, so even garbage parses; the result must
	// simply be empty rather than an error.
	m := Extract([]byte{0x00, 0x01, 0x02})
	if m.Title != "" || m.Description != "" {
		t.Errorf("Extract(garbage) = %+v, want empty", m)
	}
}
