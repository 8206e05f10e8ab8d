// Package metrics instruments engine operations with Prometheus
// counters and histograms (SPEC_FULL.md §4.G). It is entirely optional:
// the core never branches on whether a Recorder is real or a no-op.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder observes engine operations. NoOp satisfies it with every
// method doing nothing, for engines constructed without metrics.
type Recorder interface {
	DocumentIndexed()
	SearchPerformed(duration time.Duration)
	StoreError()
}

type noOp struct{}

func (noOp) DocumentIndexed()              {}
func (noOp) SearchPerformed(time.Duration) {}
func (noOp) StoreError()                   {}

// NoOp is the default Recorder used when an engine is constructed
// without metrics.
var NoOp Recorder = noOp{}

// Prometheus is the default real Recorder, registering its collectors
// with reg (typically prometheus.DefaultRegisterer).
type Prometheus struct {
	documentsIndexed prometheus.Counter
	searchesTotal    prometheus.Counter
	searchDuration   prometheus.Histogram
	storeErrors      prometheus.Counter
}

// NewPrometheus builds and registers a Prometheus recorder under reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		documentsIndexed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "documents_indexed_total",
			Help: "Number of documents successfully indexed.",
		}),
		searchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "searches_total",
			Help: "Number of search operations performed.",
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "Latency of search operations.",
			Buckets: prometheus.DefBuckets,
		}),
		storeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Number of errors surfaced by the backing store.",
		}),
	}
	reg.MustRegister(p.documentsIndexed, p.searchesTotal, p.searchDuration, p.storeErrors)
	return p
}

func (p *Prometheus) DocumentIndexed() {
	p.documentsIndexed.Inc()
}

func (p *Prometheus) SearchPerformed(d time.Duration) {
	p.searchesTotal.Inc()
	p.searchDuration.Observe(d.Seconds())
}

func (p *Prometheus) StoreError() {
	p.storeErrors.Inc()
}
