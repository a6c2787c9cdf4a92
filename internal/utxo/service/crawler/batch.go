package crawler

import "github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"

// reconciliationBatch holds everything fetched for one iteration. It is dropped after commit.
type reconciliationBatch struct {
	heights []uint64
	blocks  map[uint64]*model.Block
	txs     map[string]*model.Transaction
}

// referencedTxIDs lists the distinct transactions spent by the blocks' inputs in first-seen order.
func referencedTxIDs(heights []uint64, blocks map[uint64]*model.Block) []string {
	var txids []string
	seen := make(map[string]struct{})
	for _, h := range heights {
		for _, tx := range blocks[h].Txs {
			for _, in := range tx.Inputs {
				if _, ok := seen[in.PrevTxID]; ok {
					continue
				}
				seen[in.PrevTxID] = struct{}{}
				txids = append(txids, in.PrevTxID)
			}
		}
	}
	return txids
}

func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}
	var chunks [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
