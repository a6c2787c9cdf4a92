package chain

import (
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
)

// TransactionOutputResolver resolves inputs against transactions fetched for the current batch.
type TransactionOutputResolver struct {
	txs map[string]*model.Transaction
}

// NewTransactionOutputResolver constructs a resolver over txs keyed by transaction id.
func NewTransactionOutputResolver(txs map[string]*model.Transaction) *TransactionOutputResolver {
	return &TransactionOutputResolver{txs: txs}
}

// Resolve returns the output an input spends.
func (r *TransactionOutputResolver) Resolve(in model.TransactionInput) (model.TransactionOutput, error) {
	tx, ok := r.txs[in.PrevTxID]
	if !ok || tx == nil {
		return model.TransactionOutput{}, fault.Integrity("resolve_output", "referenced transaction %s was not fetched", in.PrevTxID)
	}
	if int(in.PrevVout) >= len(tx.Outputs) {
		return model.TransactionOutput{}, fault.Integrity("resolve_output",
			"transaction %s has %d outputs, input references index %d", in.PrevTxID, len(tx.Outputs), in.PrevVout)
	}
	return tx.Outputs[in.PrevVout], nil
}
