package mongo

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/safe"
)

const (
	historyTimeLayout = "2006-01-02 15:04:05"

	operationOut = "out"
	operationIn  = "in"
)

type stateDocument struct {
	ID    string `bson:"_id"`
	Value int64  `bson:"value"`
}

// historyDocument is the $set payload of a ledger entry; the entry id is the document _id.
type historyDocument struct {
	TxID        string `bson:"txid"`
	Time        string `bson:"time"`
	Address     string `bson:"address"`
	Asset       string `bson:"asset"`
	Value       string `bson:"value"`
	Operation   string `bson:"operation"`
	Coin        string `bson:"coin"`
	Network     string `bson:"network"`
	BlockHeight int64  `bson:"block_height"`
	Direction   string `bson:"direction"`
	Index       int64  `bson:"index"`
}

func stateID(coin model.Coin, network model.Network) string {
	return "history:" + string(coin) + ":" + string(network)
}

// operation is the document's flow label: value leaving an address is "out".
func operation(d model.Direction) string {
	if d == model.Spend {
		return operationOut
	}
	return operationIn
}

func toHistoryDocument(e model.LedgerEntry) (historyDocument, error) {
	height, err := safe.Int64(e.BlockHeight)
	if err != nil {
		return historyDocument{}, fmt.Errorf("entry %s block height: %w", e.ID, err)
	}
	return historyDocument{
		TxID:        e.TxID,
		Time:        e.Timestamp.UTC().Format(historyTimeLayout),
		Address:     e.Address,
		Asset:       e.Asset,
		Value:       model.FormatValue(e.Value),
		Operation:   operation(e.Direction),
		Coin:        string(e.Coin),
		Network:     string(e.Network),
		BlockHeight: height,
		Direction:   string(e.Direction),
		Index:       int64(e.Index),
	}, nil
}
