package model

import "github.com/shopspring/decimal"

// Transaction is a chain transaction with positional inputs and outputs.
type Transaction struct {
	TxID    string
	Inputs  []TransactionInput
	Outputs []TransactionOutput
}

// TransactionInput references a previous output by transaction id and output position.
type TransactionInput struct {
	PrevTxID string
	PrevVout uint32
}

// TransactionOutput creates value of an asset at an address.
type TransactionOutput struct {
	Index   uint32
	Asset   string
	Address string
	Value   decimal.Decimal
}
