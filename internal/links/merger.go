package links

import (
	"context"

	"github.com/linkstash/linkstash/internal/domain"
	"github.com/linkstash/linkstash/internal/logger"
	"github.com/linkstash/linkstash/internal/store"
)

// Merger removes records by id and persists the shrunken dataset.
type Merger struct {
	gateway *store.Gateway
	log     logger.Logger
}

func NewMerger(gateway *store.Gateway, log logger.Logger) *Merger {
	return &Merger{gateway: gateway, log: log}
}

// DeleteLinks removes the records whose ID is in ids, preserving the
// relative order of the rest. Removal addresses records strictly by id,
// never by position.
//
// When partition is non-empty the result is persisted through the
// store gateway; a failed or non-durable persist only produces a
// warning, the in-memory result is returned regardless. durable is true
// only when the result reached the remote store.
func (m *Merger) DeleteLinks(ctx context.Context, ds domain.Dataset, ids []string, partition string) (domain.Dataset, bool) {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	result := ds.RemoveByIDs(idSet)
	removed := ds.Len() - result.Len()

	m.log.Info("links deleted",
		logger.Int("requested", len(ids)),
		logger.Int("removed", removed))

	if partition == "" {
		return result, false
	}

	durable, err := m.gateway.SaveDataset(ctx, partition, result)
	if err != nil {
		m.log.Warn("failed to persist after delete",
			logger.String("partition", partition),
			logger.Error(err))
		return result, false
	}
	if !durable {
		m.log.Warn("delete persisted to session cache only",
			logger.String("partition", partition))
	}
	return result, durable
}
