package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
)

// UpsertLedgerEntries stores entries keyed by id. Rows with the same id collapse on merge,
// so replaying a batch leaves the ledger unchanged.
func (r *Repository) UpsertLedgerEntries(ctx context.Context, entries []model.LedgerEntry) (err error) {
	start := time.Now()
	var (
		coin    model.Coin
		network model.Network
	)
	if len(entries) > 0 {
		coin, network = entries[0].Coin, entries[0].Network
	}
	defer func() {
		r.metrics.Observe("upsert_ledger_entries", coin, network, err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO utxo_history (
	coin,
	network,
	id,
	txid,
	block_height,
	timestamp,
	address,
	asset,
	value,
	direction,
	entry_index
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare ledger batch: %w", err)
	}

	for _, e := range entries {
		if err = batch.Append(
			string(e.Coin),
			string(e.Network),
			e.ID,
			e.TxID,
			e.BlockHeight,
			e.Timestamp,
			e.Address,
			e.Asset,
			model.FormatValue(e.Value),
			string(e.Direction),
			e.Index,
		); err != nil {
			return fmt.Errorf("append ledger entry %s: %w", e.ID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert ledger entries: %w", err)
	}
	return nil
}
