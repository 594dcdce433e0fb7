// Package arenaprom exports toparena statistics as Prometheus metrics.
package arenaprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/toparena"
)

// MetricsSource is implemented by toparena.Arena and toparena.SafeArena
// for any element type.
type MetricsSource interface {
	Metrics() toparena.Metrics
}

// Collector reads a snapshot from its source on every scrape.
type Collector struct {
	src MetricsSource

	dataSize      *prometheus.Desc
	capacity      *prometheus.Desc
	chunks        *prometheus.Desc
	reservedBytes *prometheus.Desc
	wasted        *prometheus.Desc
	relocations   *prometheus.Desc
	freezes       *prometheus.Desc
	discards      *prometheus.Desc
}

const metricsPrefix = "toparena_"

// NewCollector returns a collector for src. constLabels tell arenas apart
// when several are registered with the same registry.
func NewCollector(src MetricsSource, constLabels prometheus.Labels) *Collector {
	return &Collector{
		src: src,

		dataSize: prometheus.NewDesc(
			metricsPrefix+"frozen_elements",
			"The number of elements frozen in the arena.",
			nil, constLabels,
		),
		capacity: prometheus.NewDesc(
			metricsPrefix+"capacity_elements",
			"The total element capacity of all chunks.",
			nil, constLabels,
		),
		chunks: prometheus.NewDesc(
			metricsPrefix+"chunks",
			"The number of chunks held by the arena.",
			nil, constLabels,
		),
		reservedBytes: prometheus.NewDesc(
			metricsPrefix+"reserved_bytes",
			"The bytes obtained for chunk storage.",
			nil, constLabels,
		),
		wasted: prometheus.NewDesc(
			metricsPrefix+"wasted_elements",
			"The chunk capacity abandoned when the top allocation relocated.",
			nil, constLabels,
		),
		relocations: prometheus.NewDesc(
			metricsPrefix+"relocations_total",
			"The total number of top allocation relocations.",
			nil, constLabels,
		),
		freezes: prometheus.NewDesc(
			metricsPrefix+"freezes_total",
			"The total number of frozen top allocations.",
			nil, constLabels,
		),
		discards: prometheus.NewDesc(
			metricsPrefix+"discards_total",
			"The total number of discarded top allocations.",
			nil, constLabels,
		),
	}
}

// Describe sends the descriptors of all arena metrics.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.dataSize
	ch <- c.capacity
	ch <- c.chunks
	ch <- c.reservedBytes
	ch <- c.wasted
	ch <- c.relocations
	ch <- c.freezes
	ch <- c.discards
}

// Collect sends a fresh snapshot of the arena metrics.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.src.Metrics()
	ch <- prometheus.MustNewConstMetric(c.dataSize, prometheus.GaugeValue, float64(m.DataSize))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.chunks, prometheus.GaugeValue, float64(m.NumChunks))
	ch <- prometheus.MustNewConstMetric(c.reservedBytes, prometheus.GaugeValue, float64(m.ReservedBytes))
	ch <- prometheus.MustNewConstMetric(c.wasted, prometheus.GaugeValue, float64(m.Wasted))
	ch <- prometheus.MustNewConstMetric(c.relocations, prometheus.CounterValue, float64(m.Relocations))
	ch <- prometheus.MustNewConstMetric(c.freezes, prometheus.CounterValue, float64(m.Freezes))
	ch <- prometheus.MustNewConstMetric(c.discards, prometheus.CounterValue, float64(m.Discards))
}
