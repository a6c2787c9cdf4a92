package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
)

const historyCursorName = "history"

// ReadCursor returns the last committed height, or model.InitialCursor when none was written.
func (r *Repository) ReadCursor(ctx context.Context, coin model.Coin, network model.Network) (cursor int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("read_cursor", coin, network, err, start)
	}()

	const query = `
SELECT value
FROM utxo_crawl_state FINAL
WHERE coin = ? AND network = ? AND name = ?
ORDER BY updated_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), historyCursorName)
	if err != nil {
		return 0, fmt.Errorf("query cursor: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, fmt.Errorf("iterate cursor: %w", err)
		}
		return model.InitialCursor, nil
	}

	if err = rows.Scan(&cursor); err != nil {
		return 0, fmt.Errorf("scan cursor: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate cursor: %w", err)
	}
	return cursor, nil
}

// WriteCursor records height as the last committed height.
func (r *Repository) WriteCursor(ctx context.Context, coin model.Coin, network model.Network, height int64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("write_cursor", coin, network, err, start)
	}()

	const query = `
INSERT INTO utxo_crawl_state (
	coin,
	network,
	name,
	value,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare cursor batch: %w", err)
	}
	if err = batch.Append(string(coin), string(network), historyCursorName, height, time.Now().UTC()); err != nil {
		return fmt.Errorf("append cursor: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("write cursor: %w", err)
	}
	return nil
}
