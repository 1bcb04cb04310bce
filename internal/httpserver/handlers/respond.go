package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/httpserver/deps"
	"github.com/linkstash/linkstash/internal/httpserver/mw"
)

const timeLayout = "2006-01-02 15:04:05"

// recordView is the wire shape of a record.
type recordView struct {
	ID          string   `json:"link_id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Priority    string   `json:"priority"`
	Number      int      `json:"number"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
	IsDuplicate bool     `json:"is_duplicate"`
}

func toView(r domain.Record) recordView {
	return recordView{
		ID:          r.ID,
		URL:         r.URL,
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Priority:    string(r.Priority),
		Number:      r.Number,
		CreatedAt:   r.CreatedAt.Format(timeLayout),
		UpdatedAt:   r.UpdatedAt.Format(timeLayout),
		IsDuplicate: r.IsDuplicate,
	}
}

func toViews(ds domain.Dataset) []recordView {
	records := ds.Records()
	views := make([]recordView, 0, len(records))
	for _, r := range records {
		views = append(views, toView(r))
	}
	return views
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// activePartition maps the request's access mode to the partition it
// operates on. persistent is false for public mode, whose dataset lives
// only in session scope and never touches the remote store.
func activePartition(ctx context.Context, d deps.Deps) (name string, persistent bool) {
	switch mw.ModeFrom(ctx) {
	case mw.ModeAdmin:
		return d.AdminPartition, true
	case mw.ModeGuest:
		username := mw.UsernameFrom(ctx)
		if username == "" {
			return d.AdminPartition, true
		}
		return d.GuestPrefix + username + ".xlsx", true
	default:
		return "session:" + mw.SessionFrom(ctx), false
	}
}

// loadActiveDataset reads the dataset behind the request's partition.
func loadActiveDataset(ctx context.Context, d deps.Deps) (domain.Dataset, string, bool, error) {
	name, persistent := activePartition(ctx, d)
	if !persistent {
		ds, err := d.Gateway.LoadSessionDataset(name)
		return ds, name, false, err
	}
	ds, err := d.Gateway.LoadDataset(ctx, name)
	return ds, name, true, err
}

// saveActiveDataset writes ds back to its partition. durable is false
// when the write only reached the session cache.
func saveActiveDataset(ctx context.Context, d deps.Deps, name string, persistent bool, ds domain.Dataset) (durable bool, err error) {
	if !persistent {
		return false, d.Gateway.SaveSessionDataset(name, ds)
	}
	return d.Gateway.SaveDataset(ctx, name, ds)
}
