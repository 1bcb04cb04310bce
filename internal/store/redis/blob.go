package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/linkstash/linkstash/internal/store"
)

// BlobStore implements the remote named-blob backend on Redis: one
// string key per partition, plus a set of all known partition names.
// Writes are whole-value replacements, so concurrent writers to the
// same partition race under last-writer-wins.
type BlobStore struct {
	client *redis.Client
}

// NewBlobStore creates a Redis-backed blob store.
func NewBlobStore(client *redis.Client) *BlobStore {
	return &BlobStore{client: client}
}

// Locate looks a partition up by exact name.
func (s *BlobStore) Locate(ctx context.Context, name string) (store.Handle, bool, error) {
	n, err := s.client.Exists(ctx, PartitionKey(name)).Result()
	if err != nil {
		return store.Handle{}, false, fmt.Errorf("failed to locate partition: %w", err)
	}
	if n == 0 {
		return store.Handle{}, false, nil
	}
	return store.Handle{Key: PartitionKey(name)}, true, nil
}

// Fetch downloads the full blob behind h.
func (s *BlobStore) Fetch(ctx context.Context, h store.Handle) ([]byte, error) {
	data, err := s.client.Get(ctx, h.Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("partition not found: %s", h.Key)
		}
		return nil, fmt.Errorf("failed to fetch partition: %w", err)
	}
	return data, nil
}

// Put creates or overwrites the blob named name. A single key per name
// means there can never be a second blob under the same name.
func (s *BlobStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, PartitionKey(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save partition: %w", err)
	}
	if err := s.client.SAdd(ctx, AllPartitionsKey(), name).Err(); err != nil {
		return fmt.Errorf("failed to add partition to set: %w", err)
	}
	return nil
}

// Names lists all known partition names.
func (s *BlobStore) Names(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, AllPartitionsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions: %w", err)
	}
	return names, nil
}
