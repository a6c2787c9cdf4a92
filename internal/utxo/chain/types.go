// Package chain defines the contracts shared between the chain clients and the history crawler.
package chain

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
)

// Client queries confirmed chain data from a node.
//
// ChainHeight returns the number of blocks available, so valid heights are [0, ChainHeight).
// FetchBlock and FetchTransaction return full input and output detail. Implementations report
// every failure as a transport fault.
type Client interface {
	ChainHeight(ctx context.Context) (uint64, error)
	FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	FetchTransaction(ctx context.Context, txid string) (*model.Transaction, error)
}
