package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/logger"
)

type deleteLinksRequest struct {
	IDs []string `json:"ids"`
}

type deleteLinksResponse struct {
	Deleted int  `json:"deleted"`
	Durable bool `json:"durable"`
	Total   int  `json:"total"`
}

// DeleteLinks removes records by id from the active partition and
// persists the survivors.
func DeleteLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteLinksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if len(req.IDs) == 0 {
			writeError(w, http.StatusBadRequest, "ids is required")
			return
		}

		ctx := r.Context()
		ds, partition, persistent, err := loadActiveDataset(ctx, d)
		if err != nil {
			d.Logger.Error("load dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load links")
			return
		}

		result := ds
		var durable bool
		if persistent {
			result, durable = d.Merger.DeleteLinks(ctx, ds, req.IDs, partition)
		} else {
			result, _ = d.Merger.DeleteLinks(ctx, ds, req.IDs, "")
			if err := d.Gateway.SaveSessionDataset(partition, result); err != nil {
				d.Logger.Error("save session dataset failed", logger.Error(err))
				writeError(w, http.StatusInternalServerError, "could not save links")
				return
			}
		}

		writeJSON(w, http.StatusOK, deleteLinksResponse{
			Deleted: ds.Len() - result.Len(),
			Durable: durable,
			Total:   result.Len(),
		})
	}
}
