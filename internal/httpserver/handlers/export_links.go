package handlers

import (
	"net/http"

	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/logger"
	"github.com/linkstash/linkstash/internal/store"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportLinks streams the active partition as a spreadsheet with
// sequence numbers and clickable URL cells.
func ExportLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds, _, _, err := loadActiveDataset(r.Context(), d)
		if err != nil {
			d.Logger.Error("load dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load links")
			return
		}

		data, err := store.ExportDataset(ds)
		if err != nil {
			d.Logger.Error("export failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not build export")
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="links_export.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
