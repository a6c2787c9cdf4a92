// Package ledger turns raw block spend graphs into per-address ledger entries.
package ledger

import (
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/safe"
	"github.com/shopspring/decimal"
)

const aggregateKeySeparator = "_"

// OutputResolver returns the output an input spends.
type OutputResolver interface {
	Resolve(in model.TransactionInput) (model.TransactionOutput, error)
}

// Reconciler produces ledger entries for the blocks of one coin and network.
// It holds no state between calls.
type Reconciler struct {
	coin    model.Coin
	network model.Network
}

// NewReconciler constructs a Reconciler.
func NewReconciler(coin model.Coin, network model.Network) *Reconciler {
	return &Reconciler{coin: coin, network: network}
}

// ReconcileBlock returns the ledger entries of every transaction in block, in transaction order.
// Each transaction contributes its spend entries followed by its receive entries.
func (r *Reconciler) ReconcileBlock(block *model.Block, resolver OutputResolver) ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	for i := range block.Txs {
		txEntries, err := r.reconcileTransaction(block, &block.Txs[i], resolver)
		if err != nil {
			return nil, err
		}
		entries = append(entries, txEntries...)
	}
	return entries, nil
}

type spendAggregate struct {
	asset   string
	address string
	value   decimal.Decimal
}

func (r *Reconciler) reconcileTransaction(
	block *model.Block,
	tx *model.Transaction,
	resolver OutputResolver,
) ([]model.LedgerEntry, error) {
	aggregates, err := aggregateInputs(tx, resolver)
	if err != nil {
		return nil, err
	}

	remaining := make([]model.TransactionOutput, len(tx.Outputs))
	copy(remaining, tx.Outputs)

	entries := make([]model.LedgerEntry, 0, len(aggregates)+len(remaining))
	for i, agg := range aggregates {
		value := agg.value
		if pos := firstMatch(remaining, agg.asset, agg.address); pos >= 0 {
			value = value.Sub(remaining[pos].Value)
			if value.IsNegative() {
				return nil, fault.Integrity("reconcile",
					"tx %s: output to %s of asset %s exceeds spent value by %s",
					tx.TxID, agg.address, agg.asset, model.FormatValue(value.Neg()))
			}
			remaining = append(remaining[:pos], remaining[pos+1:]...)
		}

		entry, err := r.entry(block, tx.TxID, model.Spend, i, agg.asset, agg.address, value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	for i, out := range remaining {
		entry, err := r.entry(block, tx.TxID, model.Receive, i, out.Asset, out.Address, out.Value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *Reconciler) entry(
	block *model.Block,
	txid string,
	direction model.Direction,
	pos int,
	asset, address string,
	value decimal.Decimal,
) (model.LedgerEntry, error) {
	index, err := safe.Uint32(pos)
	if err != nil {
		return model.LedgerEntry{}, fault.Integrity("reconcile", "tx %s: entry index: %v", txid, err)
	}
	return model.LedgerEntry{
		ID:          model.LedgerEntryID(txid, direction, index),
		Coin:        r.coin,
		Network:     r.network,
		TxID:        txid,
		BlockHeight: block.Height,
		Timestamp:   block.Timestamp,
		Address:     address,
		Asset:       asset,
		Value:       value,
		Direction:   direction,
		Index:       index,
	}, nil
}

// aggregateInputs sums resolved input values per asset and address in first-seen order.
func aggregateInputs(tx *model.Transaction, resolver OutputResolver) ([]spendAggregate, error) {
	aggregates := make([]spendAggregate, 0, len(tx.Inputs))
	positions := make(map[string]int, len(tx.Inputs))
	for _, in := range tx.Inputs {
		out, err := resolver.Resolve(in)
		if err != nil {
			return nil, err
		}
		key := out.Asset + aggregateKeySeparator + out.Address
		if pos, ok := positions[key]; ok {
			aggregates[pos].value = aggregates[pos].value.Add(out.Value)
			continue
		}
		positions[key] = len(aggregates)
		aggregates = append(aggregates, spendAggregate{asset: out.Asset, address: out.Address, value: out.Value})
	}
	return aggregates, nil
}

func firstMatch(outputs []model.TransactionOutput, asset, address string) int {
	for i, out := range outputs {
		if out.Asset == asset && out.Address == address {
			return i
		}
	}
	return -1
}
