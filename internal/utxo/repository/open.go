// Package repository selects the ledger store backend.
package repository

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/repository/mongo"
)

// Kind names a ledger store backend.
type Kind string

const (
	ClickHouse Kind = "clickhouse"
	Mongo      Kind = "mongo"
)

// Store is a ledger store holding an open connection.
type Store interface {
	ReadCursor(ctx context.Context, coin model.Coin, network model.Network) (int64, error)
	WriteCursor(ctx context.Context, coin model.Coin, network model.Network, height int64) error
	UpsertLedgerEntries(ctx context.Context, entries []model.LedgerEntry) error
	Close() error
}

type Config struct {
	Kind          Kind
	ClickhouseDSN string
	MongoURI      string
	MongoDatabase string
}

var (
	_ Store = (*clickhouse.Repository)(nil)
	_ Store = (*mongo.Repository)(nil)
)

// Open connects to the backend named by cfg.Kind.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Kind {
	case ClickHouse:
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return nil, fmt.Errorf("open clickhouse store: %w", err)
		}
		return repo, nil
	case Mongo:
		repo, err := mongo.NewRepository(ctx, cfg.MongoURI, cfg.MongoDatabase, metrics.NewMongoRepository())
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
}
