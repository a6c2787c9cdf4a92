package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-history/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mongoRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mongo_repository",
		Name:      "operations_total",
		Help:      "Count of MongoDB ledger store operations.",
	}, []string{"operation", "coin", "network", "status"})
	mongoRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mongo_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of MongoDB ledger store operations.",
		Buckets:   repositoryBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// MongoRepository tracks metrics for MongoDB ledger store operations.
type MongoRepository struct{}

// NewMongoRepository creates a MongoRepository metrics collector.
func NewMongoRepository() *MongoRepository {
	return &MongoRepository{}
}

// Observe records duration and status of a repository operation.
func (m MongoRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	c, n := labels(coin, network)
	s := status(err)
	mongoRepositoryRequestsTotal.WithLabelValues(operation, c, n, s).Inc()
	mongoRepositoryRequestDuration.WithLabelValues(operation, c, n, s).Observe(time.Since(started).Seconds())
}
