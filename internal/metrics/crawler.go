package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	crawlerChainHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "chain_height_total",
		Help:      "Count of chain height queries.",
	}, []string{"coin", "network", "status"})

	crawlerChainHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "chain_height_duration_seconds",
		Help:      "Duration of chain height queries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	crawlerPhaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "phase_total",
		Help:      "Count of batch phases run.",
	}, []string{"coin", "network", "phase", "status"})

	crawlerPhaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "phase_duration_seconds",
		Help:      "Duration of batch phases.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "phase", "status"})

	crawlerPhaseItems = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "phase_items",
		Help:      "Number of blocks, transactions or ledger entries handled per phase.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"coin", "network", "phase"})

	crawlerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "state",
		Help:      "Current crawl loop state, 1 for the active state.",
	}, []string{"coin", "network", "state"})

	crawlerCursor = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "cursor",
		Help:      "Last height committed to the ledger store.",
	}, []string{"coin", "network"})

	crawlerChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "history_crawler",
		Name:      "chain_height",
		Help:      "Latest block count reported by the node.",
	}, []string{"coin", "network"})
)

// Crawler tracks metrics for the history crawl loop.
type Crawler struct {
	coin    string
	network string
}

// NewCrawler constructs a Crawler collector.
func NewCrawler(coin model.Coin, network model.Network) *Crawler {
	c, n := labels(coin, network)
	return &Crawler{coin: c, network: n}
}

// ObserveChainHeight records a chain height query.
func (m Crawler) ObserveChainHeight(err error, height uint64, started time.Time) {
	s := status(err)
	crawlerChainHeightTotal.WithLabelValues(m.coin, m.network, s).Inc()
	crawlerChainHeightDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	if err == nil {
		crawlerChainHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
	}
}

// ObservePhase records one phase of a batch and the number of items it handled.
func (m Crawler) ObservePhase(phase string, err error, items int, started time.Time) {
	s := status(err)
	crawlerPhaseTotal.WithLabelValues(m.coin, m.network, phase, s).Inc()
	crawlerPhaseDuration.WithLabelValues(m.coin, m.network, phase, s).Observe(time.Since(started).Seconds())
	if err == nil {
		crawlerPhaseItems.WithLabelValues(m.coin, m.network, phase).Observe(float64(items))
	}
}

// ObserveCursor records the committed cursor.
func (m Crawler) ObserveCursor(cursor int64) {
	crawlerCursor.WithLabelValues(m.coin, m.network).Set(float64(cursor))
}

// SetState marks state as the active crawl state.
func (m Crawler) SetState(state model.CrawlState) {
	for _, s := range model.CrawlStates {
		v := 0.0
		if s == state {
			v = 1
		}
		crawlerState.WithLabelValues(m.coin, m.network, string(s)).Set(v)
	}
}
