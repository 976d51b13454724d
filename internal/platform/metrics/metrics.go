package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petcompanion"

// Metrics agrupa los contadores del estado persistido en un registry propio
// (no el global, para que los tests puedan crear varios).
type Metrics struct {
	Registry *prometheus.Registry

	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	storeReads  *prometheus.CounterVec
	storeWrites *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "cache_hits_total",
			Help:      "Loads served from the accessor cache.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "cache_misses_total",
			Help:      "Loads that had to read the key/value store.",
		}),
		storeReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "store_reads_total",
			Help:      "Store reads by result (ok, missing, decode_error, error).",
		}, []string{"key", "result"}),
		storeWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "state",
			Name:      "store_writes_total",
			Help:      "Store writes by result (ok, error).",
		}, []string{"key", "result"}),
	}
	reg.MustRegister(
		m.cacheHits,
		m.cacheMisses,
		m.storeReads,
		m.storeWrites,
		collectors.NewGoCollector(),
	)
	return m
}

// Los métodos aceptan receptor nil: un accessor sin métricas no tiene que chequear.

func (m *Metrics) CacheHit() {
	if m != nil {
		m.cacheHits.Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.cacheMisses.Inc()
	}
}

func (m *Metrics) StoreRead(key, result string) {
	if m != nil {
		m.storeReads.WithLabelValues(key, result).Inc()
	}
}

func (m *Metrics) StoreWrite(key, result string) {
	if m != nil {
		m.storeWrites.WithLabelValues(key, result).Inc()
	}
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
