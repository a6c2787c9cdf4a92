package model

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a ledger entry moves value out of or into an address.
type Direction string

var (
	// Spend is value leaving an address through a transaction's inputs.
	Spend Direction = "spend"
	// Receive is value arriving at an address through an output.
	Receive Direction = "receive"
)

const ledgerIDSeparator = "_"

// Tag returns the id segment used for the direction.
func (d Direction) Tag() string {
	if d == Spend {
		return "in"
	}
	return "out"
}

// LedgerEntry is one row of an address history.
type LedgerEntry struct {
	ID          string
	Coin        Coin
	Network     Network
	TxID        string
	BlockHeight uint64
	Timestamp   time.Time
	Address     string
	Asset       string
	Value       decimal.Decimal
	Direction   Direction
	Index       uint32
}

// LedgerEntryID builds the deterministic id of an entry, e.g. "0xab.._in_0".
func LedgerEntryID(txid string, direction Direction, index uint32) string {
	return txid + ledgerIDSeparator + direction.Tag() + ledgerIDSeparator + strconv.FormatUint(uint64(index), 10)
}
