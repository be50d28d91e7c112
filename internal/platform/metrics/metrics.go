// Copyright (c) 2026 Super 3000. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus instruments for the catalogue API.

Instruments are registered on the default registry at init and served by
[Handler] on /metrics.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "super3000"

// # Instruments

var (
	// httpRequests counts finished requests.
	// Labels: method, route (chi pattern), status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	// httpLatency measures request latency.
	// Labels: method, route
	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// filterEvaluations counts filter engine runs.
	// Labels: origin (products, browse, cli), active (true when any facet is set)
	filterEvaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "filter",
		Name:      "evaluations_total",
		Help:      "Total filter evaluations",
	}, []string{"origin", "active"})

	// filterResults tracks the size of filtered product lists.
	// Labels: origin
	filterResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "filter",
		Name:      "result_size",
		Help:      "Number of products returned per filter evaluation",
		Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
	}, []string{"origin"})

	// catalogProducts reports the size of the loaded catalogue.
	catalogProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "products",
		Help:      "Number of products in the loaded catalogue",
	})

	// browseSessions counts browse session lifecycle events.
	// Labels: event (created, updated, cleared, deleted, expired)
	browseSessions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "browse",
		Name:      "session_events_total",
		Help:      "Browse session lifecycle events",
	}, []string{"event"})

	// contactLinks counts generated WhatsApp links.
	// Labels: kind (inquiry, trader, product)
	contactLinks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "contact",
		Name:      "links_total",
		Help:      "Generated click-to-chat links",
	}, []string{"kind"})
)

// # Recorders

// RecordRequest records one finished HTTP request.
func RecordRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordFilter records one filter evaluation and its result size.
func RecordFilter(origin string, active bool, results int) {
	filterEvaluations.WithLabelValues(origin, strconv.FormatBool(active)).Inc()
	filterResults.WithLabelValues(origin).Observe(float64(results))
}

// SetCatalogSize publishes the number of loaded products.
func SetCatalogSize(products int) {
	catalogProducts.Set(float64(products))
}

// RecordSession records a browse session lifecycle event.
func RecordSession(event string) {
	browseSessions.WithLabelValues(event).Inc()
}

// RecordContactLink records one generated contact link.
func RecordContactLink(kind string) {
	contactLinks.WithLabelValues(kind).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
