package crawler

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/safe"
)

// planBatch returns the heights [cursor+1, min(cursor+1+maxBatchSize, chainHeight)).
// An empty result means the ledger has caught up with the chain.
func planBatch(cursor int64, chainHeight uint64, maxBatchSize int) ([]uint64, error) {
	if cursor < model.InitialCursor {
		return nil, fault.Integrity("plan_batch", "cursor %d below initial cursor", cursor)
	}
	start, err := safe.Uint64(cursor + 1)
	if err != nil {
		return nil, fault.Integrity("plan_batch", "cursor %d: %v", cursor, err)
	}
	if start >= chainHeight {
		return nil, nil
	}
	size, err := safe.Uint64(maxBatchSize)
	if err != nil || size == 0 {
		return nil, fmt.Errorf("invalid max batch size %d", maxBatchSize)
	}

	end := min(start+size, chainHeight)
	heights := make([]uint64, 0, end-start)
	for h := start; h < end; h++ {
		heights = append(heights, h)
	}
	return heights, nil
}
