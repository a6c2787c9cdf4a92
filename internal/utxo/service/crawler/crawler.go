// Package crawler runs the incremental history crawl loop.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/fault"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/ledger"
	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-history/pkg/workerpool"
	"go.uber.org/zap"
)

// Config tunes the crawl loop. Zero values select the defaults.
type Config struct {
	Coin         model.Coin
	Network      model.Network
	MaxBatchSize int
	WorkerCount  int
	IdleInterval time.Duration
}

type CrawlerService struct {
	logger         *zap.Logger
	coin           model.Coin
	network        model.Network
	client         ChainClient
	store          LedgerStore
	metrics        CrawlerMetrics
	reconciler     *ledger.Reconciler
	sleep          func(context.Context, time.Duration) error
	maxBatchSize   int
	workerCount    int
	idleInterval   time.Duration
	writeChunkSize int
}

func NewCrawlerService(
	client ChainClient,
	store LedgerStore,
	metrics CrawlerMetrics,
	cfg Config,
	logger *zap.Logger,
) (*CrawlerService, error) {
	if client == nil {
		return nil, errors.New("chain client is required")
	}
	if store == nil {
		return nil, errors.New("ledger store is required")
	}
	if metrics == nil {
		return nil, errors.New("crawler metrics is required")
	}
	if cfg.Coin == "" || cfg.Network == "" {
		return nil, errors.New("coin and network are required")
	}
	if cfg.MaxBatchSize < 0 || cfg.WorkerCount < 0 || cfg.IdleInterval < 0 {
		return nil, fmt.Errorf("invalid crawler config: %+v", cfg)
	}
	if cfg.MaxBatchSize == 0 {
		cfg.MaxBatchSize = defaultMaxBatchSize
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.IdleInterval == 0 {
		cfg.IdleInterval = defaultIdleInterval
	}

	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	).Named("crawler")

	return &CrawlerService{
		logger:         logger,
		coin:           cfg.Coin,
		network:        cfg.Network,
		client:         client,
		store:          store,
		metrics:        metrics,
		reconciler:     ledger.NewReconciler(cfg.Coin, cfg.Network),
		sleep:          clock.Sleep,
		maxBatchSize:   cfg.MaxBatchSize,
		workerCount:    cfg.WorkerCount,
		idleInterval:   cfg.IdleInterval,
		writeChunkSize: ledgerWriteChunkSize,
	}, nil
}

// Run resumes from the stored cursor and crawls until ctx is done or a fault occurs.
// It returns ctx.Err() on shutdown and the fault otherwise.
func (s *CrawlerService) Run(ctx context.Context) error {
	cursor, err := s.store.ReadCursor(ctx, s.coin, s.network)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fault.Store("read_cursor", err)
		s.logger.Error("read cursor failed", zap.Error(err))
		return err
	}
	s.metrics.ObserveCursor(cursor)
	s.logger.Info("resuming crawl", zap.Int64("cursor", cursor))

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		next, err := s.run(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("crawl stopped",
				zap.Stringer("fault", fault.KindOf(err)),
				zap.Int64("cursor", cursor),
				zap.Error(err),
			)
			return err
		}
		cursor = next
	}
}

// run executes one iteration and returns the cursor to carry into the next one.
func (s *CrawlerService) run(ctx context.Context, cursor int64) (int64, error) {
	started := time.Now()
	chainHeight, err := s.client.ChainHeight(ctx)
	s.metrics.ObserveChainHeight(err, chainHeight, started)
	if err != nil {
		return cursor, fault.Transport("chain_height", err)
	}

	heights, err := planBatch(cursor, chainHeight, s.maxBatchSize)
	if err != nil {
		return cursor, err
	}
	if len(heights) == 0 {
		s.setState(model.StateIdle)
		s.logger.Debug("caught up with chain; going idle",
			zap.Int64("cursor", cursor),
			zap.Uint64("chain_height", chainHeight),
			zap.Duration("sleep", s.idleInterval),
		)
		return cursor, s.sleep(ctx, s.idleInterval)
	}

	batchStarted := time.Now()
	batch, err := s.fetch(ctx, heights)
	if err != nil {
		return cursor, err
	}
	entries, err := s.reconcile(batch)
	if err != nil {
		return cursor, err
	}
	next, err := s.commit(ctx, heights, entries)
	if err != nil {
		return cursor, err
	}

	s.logger.Info("batch committed",
		zap.Uint64("first_height", heights[0]),
		zap.Uint64("last_height", heights[len(heights)-1]),
		zap.Int("blocks", len(batch.blocks)),
		zap.Int("referenced_txs", len(batch.txs)),
		zap.Int("ledger_entries", len(entries)),
		zap.Duration("duration", time.Since(batchStarted)),
	)
	return next, nil
}

func (s *CrawlerService) fetch(ctx context.Context, heights []uint64) (*reconciliationBatch, error) {
	s.setState(model.StateFetching)

	started := time.Now()
	blocks, err := fetchAll(ctx, s.workerCount, heights, s.client.FetchBlock, func(b *model.Block) uint64 {
		return b.Height
	})
	s.metrics.ObservePhase(phaseFetchBlocks, err, len(heights), started)
	if err != nil {
		return nil, fmt.Errorf("fetch blocks %d..%d: %w", heights[0], heights[len(heights)-1], err)
	}

	txids := referencedTxIDs(heights, blocks)
	started = time.Now()
	txs, err := fetchAll(ctx, s.workerCount, txids, s.client.FetchTransaction, func(tx *model.Transaction) string {
		return tx.TxID
	})
	s.metrics.ObservePhase(phaseFetchTransactions, err, len(txids), started)
	if err != nil {
		return nil, fmt.Errorf("fetch referenced transactions: %w", err)
	}

	return &reconciliationBatch{heights: heights, blocks: blocks, txs: txs}, nil
}

func (s *CrawlerService) reconcile(batch *reconciliationBatch) (entries []model.LedgerEntry, err error) {
	s.setState(model.StateReconciling)

	started := time.Now()
	defer func() {
		s.metrics.ObservePhase(phaseReconcile, err, len(entries), started)
	}()

	resolver := chain.NewTransactionOutputResolver(batch.txs)
	for _, h := range batch.heights {
		blockEntries, err := s.reconciler.ReconcileBlock(batch.blocks[h], resolver)
		if err != nil {
			return nil, fmt.Errorf("reconcile block %d: %w", h, err)
		}
		entries = append(entries, blockEntries...)
	}
	return entries, nil
}

// commit writes every entry and only then advances the cursor to the last height of the batch.
func (s *CrawlerService) commit(ctx context.Context, heights []uint64, entries []model.LedgerEntry) (next int64, err error) {
	s.setState(model.StateCommitting)

	started := time.Now()
	defer func() {
		s.metrics.ObservePhase(phaseCommit, err, len(entries), started)
	}()

	next, err = safe.Int64(heights[len(heights)-1])
	if err != nil {
		return 0, fault.Integrity("commit", "height %d: %v", heights[len(heights)-1], err)
	}

	err = workerpool.Process(ctx, s.workerCount, chunk(entries, s.writeChunkSize), func(ctx context.Context, c []model.LedgerEntry) error {
		return s.store.UpsertLedgerEntries(ctx, c)
	})
	if err != nil {
		return 0, fault.Store("upsert_ledger_entries", err)
	}

	if err = s.store.WriteCursor(ctx, s.coin, s.network, next); err != nil {
		return 0, fault.Store("write_cursor", err)
	}
	s.metrics.ObserveCursor(next)
	return next, nil
}

func (s *CrawlerService) setState(state model.CrawlState) {
	s.metrics.SetState(state)
}
