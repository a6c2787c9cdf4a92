// Package neo implements chain.Client for NEO-style UTXO nodes speaking JSON-RPC.
package neo

import "encoding/json"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCClient sends raw JSON-RPC requests to the node.
	RPCClient interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)

const (
	methodGetBlockCount     = "getblockcount"
	methodGetBlock          = "getblock"
	methodGetRawTransaction = "getrawtransaction"

	verbose = 1
)

type rpcBlock struct {
	Hash  string           `json:"hash"`
	Time  int64            `json:"time"`
	Index int64            `json:"index"`
	Tx    []rpcTransaction `json:"tx"`
}

type rpcTransaction struct {
	TxID string      `json:"txid"`
	Vin  []rpcInput  `json:"vin"`
	Vout []rpcOutput `json:"vout"`
}

type rpcInput struct {
	TxID string `json:"txid"`
	Vout int64  `json:"vout"`
}

type rpcOutput struct {
	N       int64       `json:"n"`
	Asset   string      `json:"asset"`
	Address string      `json:"address"`
	Value   json.Number `json:"value"`
}
