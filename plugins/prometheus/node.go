package prometheus

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shirou/gopsutil/cpu"
)

// DatabaseSizer is implemented by databases that can report their size on disk.
type DatabaseSizer interface {
	Size() int64
}

// RegisterProcessMetrics adds the CPU and memory usage of the node.
func (m *Metrics) RegisterProcessMetrics() {
	cpuUsage := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "process_cpu_usage",
		Help: "CPU (System) usage.",
	})
	memUsageBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "process_mem_usage_bytes",
		Help: "memory usage [bytes].",
	})

	m.registry.MustRegister(cpuUsage)
	m.registry.MustRegister(memUsageBytes)

	m.addCollect(func() {
		// an interval of 0 compares against the previous call
		if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
			cpuUsage.Set(percent[0])
		}

		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)
		memUsageBytes.Set(float64(memStats.Alloc))
	})
}

// RegisterDatabaseMetrics adds the size of the given database.
func (m *Metrics) RegisterDatabaseMetrics(db DatabaseSizer) {
	dbSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "db",
		Name:      "size",
		Help:      "DB size in bytes.",
	})

	m.registry.MustRegister(dbSize)

	m.addCollect(func() {
		dbSize.Set(float64(db.Size()))
	})
}
