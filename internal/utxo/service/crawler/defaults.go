package crawler

import "time"

const (
	defaultMaxBatchSize = 1000
	defaultWorkerCount  = 100
	defaultIdleInterval = 500 * time.Millisecond

	ledgerWriteChunkSize = 1000
)

const (
	phaseFetchBlocks       = "fetch_blocks"
	phaseFetchTransactions = "fetch_transactions"
	phaseReconcile         = "reconcile"
	phaseCommit            = "commit"
)
