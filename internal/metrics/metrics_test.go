package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorsRegisterAndCount(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)

	m.WorkerPoolQueueDepth.Set(3)
	m.WorkerPoolTasksTotal.WithLabelValues("work").Add(5)
	m.WorkerPoolTasksTotal.WithLabelValues("post").Inc()
	m.FileBytesTotal.WithLabelValues("read").Add(4096)
	m.ChunksResident.WithLabelValues("points").Set(2)
	m.GeoConversionsTotal.WithLabelValues("TransverseMercator").Inc()

	if got := testutil.ToFloat64(m.WorkerPoolQueueDepth); got != 3 {
		t.Errorf("queue depth = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.WorkerPoolTasksTotal.WithLabelValues("work")); got != 5 {
		t.Errorf("work tasks = %v, want 5", got)
	}
	if got := testutil.ToFloat64(m.FileBytesTotal.WithLabelValues("read")); got != 4096 {
		t.Errorf("file bytes = %v, want 4096", got)
	}
}

func TestUpdateRuntimeStats(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)

	m.UpdateRuntimeStats()

	if got := testutil.ToFloat64(m.Goroutines); got <= 0 {
		t.Errorf("goroutines = %v, want > 0", got)
	}
	if got := testutil.ToFloat64(m.MemoryAllocBytes); got <= 0 {
		t.Errorf("memory alloc = %v, want > 0", got)
	}
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	// Two instances on distinct registries must not panic with
	// duplicate registration.
	_ = NewMetricsWithRegistry(prometheus.NewRegistry())
	_ = NewMetricsWithRegistry(prometheus.NewRegistry())
}
