package handlers

import (
	"net/http"

	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/logger"
)

type listLinksResponse struct {
	Partition string       `json:"partition"`
	Total     int          `json:"total"`
	Records   []recordView `json:"records"`
}

// ListLinks returns every record in the active partition.
func ListLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, partition, _, err := loadActiveDataset(r.Context(), d)
		if err != nil {
			d.Logger.Error("load dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load links")
			return
		}

		writeJSON(w, http.StatusOK, listLinksResponse{
			Partition: partition,
			Total:     ds.Len(),
			Records:   toViews(ds),
		})
	}
}
