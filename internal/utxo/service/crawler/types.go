package crawler

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainClient interface {
		ChainHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
		FetchTransaction(ctx context.Context, txid string) (*model.Transaction, error)
	}
	LedgerStore interface {
		ReadCursor(ctx context.Context, coin model.Coin, network model.Network) (int64, error)
		WriteCursor(ctx context.Context, coin model.Coin, network model.Network, height int64) error
		UpsertLedgerEntries(ctx context.Context, entries []model.LedgerEntry) error
	}
	CrawlerMetrics interface {
		ObserveChainHeight(err error, height uint64, started time.Time)
		ObservePhase(phase string, err error, items int, started time.Time)
		ObserveCursor(cursor int64)
		SetState(state model.CrawlState)
	}
)
