package crawler

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/workerpool"
)

// fetchAll fetches every distinct key with at most workers concurrent calls and indexes the
// results by the key each result reports. The whole batch fails unless the reported keys are
// exactly the requested ones.
func fetchAll[K comparable, V any](
	ctx context.Context,
	workers int,
	keys []K,
	fetch func(context.Context, K) (*V, error),
	keyOf func(*V) K,
) (map[K]*V, error) {
	distinct := make([]K, 0, len(keys))
	seen := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		distinct = append(distinct, k)
	}

	results, err := workerpool.Collect(ctx, workers, distinct, fetch)
	if err != nil {
		return nil, fault.Transport("fetch_batch", err)
	}

	fetched := make(map[K]*V, len(results))
	for i, r := range results {
		if r == nil {
			return nil, fault.Integrity("fetch_batch", "no result for %v", distinct[i])
		}
		k := keyOf(r)
		if _, dup := fetched[k]; dup {
			return nil, fault.Integrity("fetch_batch", "duplicate result for %v", k)
		}
		if _, requested := seen[k]; !requested {
			return nil, fault.Integrity("fetch_batch", "unrequested result %v for %v", k, distinct[i])
		}
		fetched[k] = r
	}
	for _, k := range distinct {
		if _, ok := fetched[k]; !ok {
			return nil, fault.Integrity("fetch_batch", "missing result for %v", k)
		}
	}
	return fetched, nil
}
