package handlers

import (
	"errors"
	"net/http"

	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/links"
	"github.com/linkstash/linkstash/internal/logger"
)

// Uploads are buffered to disk past this threshold.
const maxImportMemory = 8 << 20

type importResponse struct {
	Appended int  `json:"appended"`
	Skipped  int  `json:"skipped"`
	Durable  bool `json:"durable"`
	Total    int  `json:"total"`
}

// ImportFile ingests an uploaded bookmark file (xlsx, csv, tsv or
// browser bookmark HTML) into the active partition. The "policy" form
// field selects duplicate handling; it defaults to keeping both.
func ImportFile(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportMemory); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "file field is required")
			return
		}
		defer file.Close()

		policy := links.ParsePolicy(r.FormValue("policy"))

		ctx := r.Context()
		ds, partition, persistent, err := loadActiveDataset(ctx, d)
		if err != nil {
			d.Logger.Error("load dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load links")
			return
		}

		result, err := d.Importer.ImportFile(ctx, ds, header.Filename, file, policy, nil)
		if err != nil {
			switch {
			case errors.Is(err, links.ErrUnsupportedFormat):
				writeError(w, http.StatusBadRequest, "unsupported file format")
			case errors.Is(err, links.ErrNoCandidates):
				writeError(w, http.StatusBadRequest, "no links found in file")
			case errors.Is(err, links.ErrNoNewRecords):
				writeError(w, http.StatusBadRequest, "all links were duplicates")
			default:
				d.Logger.Error("import failed",
					logger.String("file", header.Filename),
					logger.Error(err))
				writeError(w, http.StatusBadRequest, "could not parse file")
			}
			return
		}

		durable, err := saveActiveDataset(ctx, d, partition, persistent, result.Dataset)
		if err != nil {
			d.Logger.Error("save dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not save links")
			return
		}

		writeJSON(w, http.StatusOK, importResponse{
			Appended: result.Appended,
			Skipped:  result.Skipped,
			Durable:  durable,
			Total:    result.Dataset.Len(),
		})
	}
}
