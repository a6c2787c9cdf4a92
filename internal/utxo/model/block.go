// Package model defines domain models for UTXO history crawling.
package model

import "time"

// Block is a confirmed block with its transactions in chain order.
type Block struct {
	Height    uint64
	Hash      string
	Timestamp time.Time
	Txs       []Transaction
}

// CrawlState describes what the crawl loop is currently doing.
type CrawlState string

var (
	// StateIdle waits for the chain to grow past the cursor.
	StateIdle CrawlState = "IDLE"
	// StateFetching has block and referenced transaction requests in flight.
	StateFetching CrawlState = "FETCHING"
	// StateReconciling turns fetched blocks into ledger entries.
	StateReconciling CrawlState = "RECONCILING"
	// StateCommitting writes ledger entries and advances the cursor.
	StateCommitting CrawlState = "COMMITTING"
)

// CrawlStates lists every state in loop order.
var CrawlStates = []CrawlState{StateIdle, StateFetching, StateReconciling, StateCommitting}

// InitialCursor is the cursor value before any height has been committed.
const InitialCursor int64 = -1
