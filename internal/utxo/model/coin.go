package model

// Coin identifies the chain a ledger belongs to.
type Coin string

// Network identifies the network of a coin.
type Network string

var (
	NEO Coin = "NEO"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)
