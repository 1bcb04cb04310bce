package links

import "errors"

// User-facing import failures. All of them are raised before any
// dataset mutation, so a caller that sees one knows nothing changed.
var (
	// ErrUnsupportedFormat means the file extension is not one of the
	// recognized bulk formats.
	ErrUnsupportedFormat = errors.New("unsupported file format, use xlsx, csv, tsv, txt or html")

	// ErrNoCandidates means the file parsed but contained no usable URLs.
	ErrNoCandidates = errors.New("no valid URLs found in the uploaded file")

	// ErrNoNewRecords means duplicate handling filtered out every candidate.
	ErrNoNewRecords = errors.New("no new URLs to process after duplicate handling")
)
