package main

//
// Optional Prometheus exporter for a running sweep
//

import (
	"net/http"

	"github.com/apex/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metricsCollector exposes the sweep-wide running totals (summed over
// every completed tuple) as Prometheus counters, read through snapshot on
// every scrape rather than pushed.
type metricsCollector struct {
	framesSent *prometheus.Desc
	collisions *prometheus.Desc
	wastedNs   *prometheus.Desc

	snapshot func() (framesSent, collisions, wastedNs float64)
}

func newMetricsCollector(snapshot func() (float64, float64, float64)) *metricsCollector {
	return &metricsCollector{
		framesSent: prometheus.NewDesc("csmasim_frames_sent_total",
			"Total frames sent across all stations in the running sweep.", nil, nil),
		collisions: prometheus.NewDesc("csmasim_collisions_total",
			"Total ACK-timeout collisions across all stations in the running sweep.", nil, nil),
		wastedNs: prometheus.NewDesc("csmasim_wasted_ns_total",
			"Total simulated nanoseconds wasted to collisions in the running sweep.", nil, nil),
		snapshot: snapshot,
	}
}

// Describe implements [prometheus.Collector].
func (c *metricsCollector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.framesSent
	descs <- c.collisions
	descs <- c.wastedNs
}

// Collect implements [prometheus.Collector].
func (c *metricsCollector) Collect(metrics chan<- prometheus.Metric) {
	sent, collisions, wasted := c.snapshot()
	metrics <- prometheus.MustNewConstMetric(c.framesSent, prometheus.CounterValue, sent)
	metrics <- prometheus.MustNewConstMetric(c.collisions, prometheus.CounterValue, collisions)
	metrics <- prometheus.MustNewConstMetric(c.wastedNs, prometheus.CounterValue, wasted)
}

// serveMetrics registers collector and serves it on addr until the
// process exits. It runs in its own goroutine; a failure to bind is
// fatal since the caller explicitly asked for metrics.
func serveMetrics(addr string, collector *metricsCollector) {
	registry := prometheus.NewRegistry()
	prometheus.WrapRegistererWith(prometheus.Labels{"run": "csmasim"}, registry).MustRegister(collector)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Fatal("csmasim: serveMetrics")
		}
	}()
}
