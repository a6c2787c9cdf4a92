package neo

import (
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/safe"
)

const hexPrefix = "0x"

func convertBlock(src rpcBlock) (*model.Block, error) {
	height, err := safe.Uint64(src.Index)
	if err != nil {
		return nil, fmt.Errorf("block index: %w", err)
	}
	if err := validateHash(src.Hash); err != nil {
		return nil, fmt.Errorf("block %d hash: %w", height, err)
	}

	txs := make([]model.Transaction, 0, len(src.Tx))
	for _, tx := range src.Tx {
		converted, err := convertTransaction(tx)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", height, err)
		}
		txs = append(txs, *converted)
	}

	return &model.Block{
		Height:    height,
		Hash:      src.Hash,
		Timestamp: time.Unix(src.Time, 0).UTC(),
		Txs:       txs,
	}, nil
}

func convertTransaction(src rpcTransaction) (*model.Transaction, error) {
	if err := validateHash(src.TxID); err != nil {
		return nil, fmt.Errorf("txid: %w", err)
	}

	inputs := make([]model.TransactionInput, 0, len(src.Vin))
	for i, vin := range src.Vin {
		if err := validateHash(vin.TxID); err != nil {
			return nil, fmt.Errorf("tx %s vin %d txid: %w", src.TxID, i, err)
		}
		vout, err := safe.Uint32(vin.Vout)
		if err != nil {
			return nil, fmt.Errorf("tx %s vin %d vout: %w", src.TxID, i, err)
		}
		inputs = append(inputs, model.TransactionInput{PrevTxID: vin.TxID, PrevVout: vout})
	}

	outputs := make([]model.TransactionOutput, 0, len(src.Vout))
	for i, vout := range src.Vout {
		if vout.N != int64(i) {
			return nil, fmt.Errorf("tx %s vout %d reports position %d", src.TxID, i, vout.N)
		}
		index, err := safe.Uint32(vout.N)
		if err != nil {
			return nil, fmt.Errorf("tx %s vout %d: %w", src.TxID, i, err)
		}
		value, err := model.ParseValue(vout.Value.String())
		if err != nil {
			return nil, fmt.Errorf("tx %s vout %d: %w", src.TxID, i, err)
		}
		outputs = append(outputs, model.TransactionOutput{
			Index:   index,
			Asset:   vout.Asset,
			Address: vout.Address,
			Value:   value,
		})
	}

	return &model.Transaction{
		TxID:    src.TxID,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

// validateHash accepts 32-byte hex hashes with an optional 0x prefix.
func validateHash(s string) error {
	raw := strings.TrimPrefix(s, hexPrefix)
	if len(raw) != chainhash.MaxHashStringSize {
		return fmt.Errorf("hash %q: want %d hex characters, got %d", s, chainhash.MaxHashStringSize, len(raw))
	}
	if _, err := chainhash.NewHashFromStr(raw); err != nil {
		return fmt.Errorf("hash %q: %w", s, err)
	}
	return nil
}
