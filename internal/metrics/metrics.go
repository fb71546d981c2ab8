// Package metrics defines the Prometheus collectors for the runtime
// foundation: worker pool activity, file-layer throughput, virtual
// chunked array residency and geo-zone conversions, plus the generic
// health/readiness/liveness handlers the driver serves.
package metrics

import (
	"net/http"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var defaultRegistry = prometheus.DefaultRegisterer

// Metrics holds every collector the driver exports.
type Metrics struct {
	registry prometheus.Registerer

	WorkerPoolQueueDepth    prometheus.Gauge
	WorkerPoolActiveWorkers prometheus.Gauge
	WorkerPoolTasksTotal    *prometheus.CounterVec

	FileBytesTotal       *prometheus.CounterVec
	FileThroughputMBps   *prometheus.GaugeVec
	FileOpenHandles      prometheus.Gauge
	FilePipelinedPending prometheus.Gauge

	ChunksResident  *prometheus.GaugeVec
	ChunkEvictions  *prometheus.CounterVec
	SpillFileBytes  *prometheus.GaugeVec
	TileCacheBytes  prometheus.Gauge
	TileCacheLoads  prometheus.Counter
	TileCacheEvicts prometheus.Counter

	GeoConversionsTotal *prometheus.CounterVec
	GeoRegistryZones    prometheus.Gauge

	Goroutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
}

// NewMetrics registers collectors on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(defaultRegistry)
}

// NewMetricsWithRegistry registers collectors on a caller-provided
// registry, which tests use to avoid duplicate-registration panics.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,

		WorkerPoolQueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_workerpool_queue_depth",
			Help: "Tasks waiting in the worker pool deque",
		}),
		WorkerPoolActiveWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_workerpool_active_workers",
			Help: "Worker threads currently executing a task",
		}),
		WorkerPoolTasksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "udcore_workerpool_tasks_total",
			Help: "Tasks processed by the worker pool",
		}, []string{"kind"}), // kind is "work" or "post"

		FileBytesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "udcore_file_bytes_total",
			Help: "Bytes moved through the file layer",
		}, []string{"direction"}), // "read" or "write"
		FileThroughputMBps: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "udcore_file_throughput_mbps",
			Help: "Rolling per-handle throughput estimate in MB/s",
		}, []string{"path"}),
		FileOpenHandles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_file_open_handles",
			Help: "File handles currently open",
		}),
		FilePipelinedPending: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_file_pipelined_pending",
			Help: "Pipelined read requests not yet retrieved",
		}),

		ChunksResident: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "udcore_vchunked_chunks_resident",
			Help: "Chunks held in memory per virtual chunked array",
		}, []string{"array"}),
		ChunkEvictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "udcore_vchunked_evictions_total",
			Help: "Chunks evicted to the spill file",
		}, []string{"array"}),
		SpillFileBytes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "udcore_vchunked_spill_bytes",
			Help: "Size of the append-only spill file",
		}, []string{"array"}),
		TileCacheBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_imagestream_tile_cache_bytes",
			Help: "Bytes held by resident image tiles",
		}),
		TileCacheLoads: factory.NewCounter(prometheus.CounterOpts{
			Name: "udcore_imagestream_tile_loads_total",
			Help: "Tiles streamed in from the file layer",
		}),
		TileCacheEvicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "udcore_imagestream_tile_evictions_total",
			Help: "Tiles evicted by FreeTiles",
		}),

		GeoConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "udcore_geozone_conversions_total",
			Help: "Coordinate conversions by projection",
		}, []string{"projection"}),
		GeoRegistryZones: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_geozone_registry_zones",
			Help: "Zones loaded into the dynamic SRID registry",
		}),

		Goroutines: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_goroutines",
			Help: "Current goroutine count",
		}),
		MemoryAllocBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "udcore_memory_alloc_bytes",
			Help: "Heap bytes currently allocated",
		}),
	}
}

// UpdateRuntimeStats refreshes the process-level gauges; the driver calls
// this on a ticker.
func (m *Metrics) UpdateRuntimeStats() {
	m.Goroutines.Set(float64(runtime.NumGoroutine()))
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	m.MemoryAllocBytes.Set(float64(stats.Alloc))
}

// Handler serves the Prometheus exposition endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
