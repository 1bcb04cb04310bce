package store

import (
	"context"
	"errors"
	"testing"

	"github.com/linkstash/linkstash/internal/logger"
)

// fakeBlobStore is an in-memory BlobStore that can be told to fail.
type fakeBlobStore struct {
	blobs map[string][]byte
	down  bool
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

var errBackendDown = errors.New("backend unreachable")

func (f *fakeBlobStore) Locate(_ context.Context, name string) (Handle, bool, error) {
	if f.down {
		return Handle{}, false, errBackendDown
	}
	if _, ok := f.blobs[name]; !ok {
		return Handle{}, false, nil
	}
	return Handle{Key: name}, true, nil
}

func (f *fakeBlobStore) Fetch(_ context.Context, h Handle) ([]byte, error) {
	if f.down {
		return nil, errBackendDown
	}
	data, ok := f.blobs[h.Key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeBlobStore) Put(_ context.Context, name string, data []byte) error {
	if f.down {
		return errBackendDown
	}
	f.blobs[name] = data
	return nil
}

func TestGatewayPutDurable(t *testing.T) {
	remote := newFakeBlobStore()
	g := NewGateway(remote, logger.Nop())

	durable, err := g.Put(context.Background(), "links.xlsx", []byte("blob"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if !durable {
		t.Error("Put() durable = false, want true with healthy backend")
	}
	if string(remote.blobs["links.xlsx"]) != "blob" {
		t.Error("blob did not reach the remote backend")
	}
}

func TestGatewayPutOverwritesInPlace(t *testing.T) {
	remote := newFakeBlobStore()
	g := NewGateway(remote, logger.Nop())
	ctx := context.Background()

	if _, err := g.Put(ctx, "links.xlsx", []byte("v1")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if _, err := g.Put(ctx, "links.xlsx", []byte("v2")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if len(remote.blobs) != 1 {
		t.Errorf("backend holds %v blobs, want 1 (never a second blob per name)", len(remote.blobs))
	}
	if string(remote.blobs["links.xlsx"]) != "v2" {
		t.Error("last writer did not win")
	}
}

func TestGatewayDegradesToSessionCache(t *testing.T) {
	remote := newFakeBlobStore()
	remote.down = true
	g := NewGateway(remote, logger.Nop())
	ctx := context.Background()

	durable, err := g.Put(ctx, "links.xlsx", []byte("cached"))
	if err != nil {
		t.Fatalf("Put() with backend down must still succeed, got error %v", err)
	}
	if durable {
		t.Error("Put() durable = true, want false when degraded")
	}

	// A subsequent locate+fetch in the same session serves the cached copy.
	h, ok, err := g.Locate(ctx, "links.xlsx")
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if !ok {
		t.Fatal("Locate() did not find the cached blob")
	}
	if !h.Session {
		t.Error("Locate() handle should point at the session cache")
	}

	data, err := g.Fetch(ctx, h)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "cached" {
		t.Errorf("Fetch() = %q, want cached", data)
	}
}

func TestGatewayNilRemote(t *testing.T) {
	g := NewGateway(nil, logger.Nop())
	ctx := context.Background()

	durable, err := g.Put(ctx, "links.xlsx", []byte("local"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if durable {
		t.Error("Put() durable = true, want false without a backend")
	}

	_, ok, err := g.Locate(ctx, "links.xlsx")
	if err != nil || !ok {
		t.Fatalf("Locate() = ok=%v err=%v, want found", ok, err)
	}
}

func TestGatewayLoadMissingPartitionIsEmpty(t *testing.T) {
	g := NewGateway(newFakeBlobStore(), logger.Nop())

	ds, err := g.LoadDataset(context.Background(), "absent.xlsx")
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("Len() = %v, want 0", ds.Len())
	}
}

func TestGatewaySaveLoadDataset(t *testing.T) {
	g := NewGateway(newFakeBlobStore(), logger.Nop())
	ctx := context.Background()
	ds := sampleDataset()

	durable, err := g.SaveDataset(ctx, "links.xlsx", ds)
	if err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}
	if !durable {
		t.Error("SaveDataset() durable = false, want true")
	}

	got, err := g.LoadDataset(ctx, "links.xlsx")
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if got.Len() != ds.Len() {
		t.Errorf("Len() = %v, want %v", got.Len(), ds.Len())
	}
}

func TestSessionCacheCopiesData(t *testing.T) {
	c := NewSessionCache()
	data := []byte("abc")
	c.Put("x", data)
	data[0] = 'z'

	got, ok := c.Get("x")
	if !ok {
		t.Fatal("Get() did not find the blob")
	}
	if string(got) != "abc" {
		t.Errorf("Get() = %q, want abc (cache must copy)", got)
	}
}
