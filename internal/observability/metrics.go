package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AssetCacheHits counts asset cache hits by cache version.
	AssetCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mojicode_asset_cache_hits_total",
		Help: "Total number of asset cache hits by cache version",
	}, []string{"version"})

	// AssetCacheMisses counts asset cache misses by cache version.
	AssetCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mojicode_asset_cache_misses_total",
		Help: "Total number of asset cache misses by cache version",
	}, []string{"version"})

	// SyncQueueDepth is the gauge of pending requests awaiting replay.
	SyncQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mojicode_sync_queue_depth",
		Help: "Number of pending mutating requests awaiting replay",
	})

	// SyncReplayTotal counts replay attempts by outcome.
	SyncReplayTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mojicode_sync_replay_total",
		Help: "Total replayed requests by outcome",
	}, []string{"outcome"})

	// StorageErrors counts storage-layer errors by entity and operation.
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mojicode_storage_errors_total",
		Help: "Total storage errors by entity and operation",
	}, []string{"entity", "operation"})
)
