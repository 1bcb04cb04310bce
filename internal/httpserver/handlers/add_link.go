package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/links"
	"github.com/linkstash/linkstash/internal/logger"
)

type addLinkRequest struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Priority    string   `json:"priority"`
	Number      int      `json:"number"`
}

type addLinkResponse struct {
	Record  recordView `json:"record"`
	Durable bool       `json:"durable"`
	Total   int        `json:"total"`
}

// AddLink appends one record to the active partition. Missing title,
// description and tags are filled from the page itself before the
// record is built.
func AddLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		req.URL = strings.TrimSpace(req.URL)
		if req.URL == "" {
			writeError(w, http.StatusBadRequest, "url is required")
			return
		}

		ctx := r.Context()
		ds, partition, persistent, err := loadActiveDataset(ctx, d)
		if err != nil {
			d.Logger.Error("load dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not load links")
			return
		}

		in := links.Input{
			URL:         req.URL,
			Title:       req.Title,
			Description: req.Description,
			Tags:        req.Tags,
			Priority:    domain.ParsePriority(req.Priority),
			Number:      req.Number,
		}

		if in.Title == "" || in.Description == "" {
			meta := d.Fetcher.Fetch(ctx, in.URL)
			if in.Title == "" {
				in.Title = meta.Title
			}
			if in.Description == "" {
				in.Description = meta.Description
			}
			if len(in.Tags) == 0 && len(meta.TagsHint) > 0 {
				in.Tags = meta.TagsHint
			}
		}
		if len(in.Tags) == 0 {
			text := strings.TrimSpace(in.Title + " " + in.Description)
			in.Tags = []string{d.Tagger.Predict(text, in.URL)}
		}

		out := d.Builder.SaveLink(ds, in)
		if out.Len() == ds.Len() {
			writeError(w, http.StatusInternalServerError, "could not save link")
			return
		}

		durable, err := saveActiveDataset(ctx, d, partition, persistent, out)
		if err != nil {
			d.Logger.Error("save dataset failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "could not save links")
			return
		}

		records := out.Records()
		writeJSON(w, http.StatusCreated, addLinkResponse{
			Record:  toView(records[len(records)-1]),
			Durable: durable,
			Total:   out.Len(),
		})
	}
}
