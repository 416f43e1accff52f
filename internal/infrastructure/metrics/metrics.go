package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg              *prometheus.Registry
	InsightRequests  *prometheus.CounterVec
	InsightLatency   prometheus.Histogram
	DatasetReloads   *prometheus.CounterVec
	DatasetRecords   prometheus.Gauge
	DatasetDelivered prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	insightRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "salesdash_insight_requests_total",
		Help: "Insight requests by outcome.",
	}, []string{"outcome"})
	insightLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "salesdash_insight_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	})
	reloads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "salesdash_dataset_reloads_total",
		Help: "Dataset reloads by outcome.",
	}, []string{"outcome"})
	records := prometheus.NewGauge(prometheus.GaugeOpts{Name: "salesdash_dataset_records"})
	delivered := prometheus.NewGauge(prometheus.GaugeOpts{Name: "salesdash_dataset_delivered_records"})

	r.MustRegister(insightRequests, insightLatency, reloads, records, delivered)
	return &Registry{
		reg:              r,
		InsightRequests:  insightRequests,
		InsightLatency:   insightLatency,
		DatasetReloads:   reloads,
		DatasetRecords:   records,
		DatasetDelivered: delivered,
	}
}

func (r *Registry) ObserveInsight(outcome string, elapsed time.Duration) {
	r.InsightRequests.WithLabelValues(outcome).Inc()
	r.InsightLatency.Observe(elapsed.Seconds())
}

func (r *Registry) RecordReload(outcome string, records, delivered int) {
	r.DatasetReloads.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		r.DatasetRecords.Set(float64(records))
		r.DatasetDelivered.Set(float64(delivered))
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
