package store

import (
	"context"
	"fmt"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/logger"
)

// Handle identifies a located blob. Session is true when the handle
// points into the in-process cache rather than the remote backend.
type Handle struct {
	Key     string
	Session bool
}

// BlobStore is the remote backend contract: exact-name lookup within
// one container, whole-blob download, and create-or-overwrite by name.
type BlobStore interface {
	Locate(ctx context.Context, name string) (Handle, bool, error)
	Fetch(ctx context.Context, h Handle) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
}

// Gateway is the persistence entry point for the pipeline. All writes
// are last-writer-wins whole-blob replacements. When the remote backend
// is missing or unreachable, operations transparently degrade to a
// session-scoped cache: the write still succeeds from the caller's
// point of view, it just is not durable.
type Gateway struct {
	remote BlobStore // nil = remote store not configured
	cache  *SessionCache
	log    logger.Logger
}

// NewGateway wires a gateway over an optional remote backend.
func NewGateway(remote BlobStore, log logger.Logger) *Gateway {
	return &Gateway{
		remote: remote,
		cache:  NewSessionCache(),
		log:    log,
	}
}

// Locate finds a blob by exact name, preferring the remote backend and
// falling back to the session cache.
func (g *Gateway) Locate(ctx context.Context, name string) (Handle, bool, error) {
	if g.remote != nil {
		h, ok, err := g.remote.Locate(ctx, name)
		if err == nil {
			if ok {
				return h, true, nil
			}
		} else {
			g.log.Warn("remote locate failed, checking session cache",
				logger.String("name", name),
				logger.Error(err))
		}
	}

	if _, ok := g.cache.Get(name); ok {
		return Handle{Key: name, Session: true}, true, nil
	}
	return Handle{}, false, nil
}

// Fetch downloads the blob behind h.
func (g *Gateway) Fetch(ctx context.Context, h Handle) ([]byte, error) {
	if h.Session {
		data, ok := g.cache.Get(h.Key)
		if !ok {
			return nil, fmt.Errorf("session blob not found: %s", h.Key)
		}
		return data, nil
	}
	return g.remote.Fetch(ctx, h)
}

// Put stores data under name: overwrite when the name exists, create
// otherwise, never a second blob under the same name. durable is false
// when the write only reached the session cache.
func (g *Gateway) Put(ctx context.Context, name string, data []byte) (durable bool, err error) {
	if g.remote != nil {
		putErr := g.remote.Put(ctx, name, data)
		if putErr == nil {
			// Keep the session copy in step with the remote one.
			g.cache.Put(name, data)
			return true, nil
		}
		g.log.Warn("remote put failed, degrading to session cache",
			logger.String("name", name),
			logger.Error(putErr))
	}

	g.cache.Put(name, data)
	return false, nil
}

// PutSession stores data in the session cache only, for partitions that
// must never touch the remote store (anonymous use).
func (g *Gateway) PutSession(name string, data []byte) {
	g.cache.Put(name, data)
}

// LoadDataset is the read convenience: locate, fetch, decode. A missing
// partition is not an error, it decodes to an empty dataset.
func (g *Gateway) LoadDataset(ctx context.Context, name string) (domain.Dataset, error) {
	h, ok, err := g.Locate(ctx, name)
	if err != nil {
		return domain.Dataset{}, err
	}
	if !ok {
		return domain.Dataset{}, nil
	}

	data, err := g.Fetch(ctx, h)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to fetch partition %s: %w", name, err)
	}
	return DecodeDataset(data)
}

// LoadSessionDataset reads a session-only partition.
func (g *Gateway) LoadSessionDataset(name string) (domain.Dataset, error) {
	data, ok := g.cache.Get(name)
	if !ok {
		return domain.Dataset{}, nil
	}
	return DecodeDataset(data)
}

// SaveDataset is the write convenience: encode then Put.
func (g *Gateway) SaveDataset(ctx context.Context, name string, ds domain.Dataset) (durable bool, err error) {
	data, err := EncodeDataset(ds)
	if err != nil {
		return false, fmt.Errorf("failed to encode partition %s: %w", name, err)
	}
	return g.Put(ctx, name, data)
}

// SaveSessionDataset writes a session-only partition.
func (g *Gateway) SaveSessionDataset(name string, ds domain.Dataset) error {
	data, err := EncodeDataset(ds)
	if err != nil {
		return fmt.Errorf("failed to encode session partition %s: %w", name, err)
	}
	g.PutSession(name, data)
	return nil
}
