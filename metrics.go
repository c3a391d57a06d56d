// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mvdd

import "github.com/prometheus/client_golang/prometheus"

// metricsRecorder publishes pool, cache, and GC counters through the
// prometheus client, opt-in via WithMetrics since most embedders of this
// package will already run their own prometheus registry and do not
// want a second one appearing unasked.
type metricsRecorder struct {
	nodesUsed     prometheus.Gauge
	nodesSize     prometheus.Gauge
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter
	gcRuns        prometheus.Counter
	reorderRuns   prometheus.Counter
}

// WithMetrics registers a set of gauges and counters for this manager on
// reg, and arranges for ForceGC, ForceReorder, and the operation cache to
// keep them up to date.
func WithMetrics(reg prometheus.Registerer, namespace string) Option {
	return func(m *Manager) {
		r := &metricsRecorder{
			nodesUsed: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace, Name: "nodes_used", Help: "Nodes currently live in the manager's pool.",
			}),
			nodesSize: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace, Name: "nodes_size", Help: "Capacity of the manager's node pool.",
			}),
			cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace, Name: "cache_hits_total", Help: "Operation cache hits.",
			}),
			cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace, Name: "cache_misses_total", Help: "Operation cache misses.",
			}),
			gcRuns: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace, Name: "gc_runs_total", Help: "Completed ForceGC passes.",
			}),
			reorderRuns: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace, Name: "reorder_runs_total", Help: "Completed ForceReorder passes.",
			}),
		}
		reg.MustRegister(r.nodesUsed, r.nodesSize, r.cacheHits, r.cacheMisses, r.gcRuns, r.reorderRuns)
		m.stats = r
	}
}

// sample refreshes the gauges and drains the operation cache's running
// hit/miss counters into the prometheus counters. Called at the end of
// ForceGC and ForceReorder, the two points where pool shape changes.
func (m *Manager) sample() {
	if m.stats == nil {
		return
	}
	m.stats.nodesUsed.Set(float64(m.pool.used()))
	m.stats.nodesSize.Set(float64(m.pool.size()))
	if m.cache.hits > 0 {
		m.stats.cacheHits.Add(float64(m.cache.hits))
		m.cache.hits = 0
	}
	if m.cache.miss > 0 {
		m.stats.cacheMisses.Add(float64(m.cache.miss))
		m.cache.miss = 0
	}
}
