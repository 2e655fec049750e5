// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request and engagement metrics.
type Collector struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	likes        prometheus.Counter
	unlikes      prometheus.Counter
	aiSuccess    prometheus.Counter
	aiFailure    prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on a fresh
// registry (the default registry would leak between tests).
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "healthportal_http_requests_total",
			Help: "HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "healthportal_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		likes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "healthportal_likes_total",
			Help: "Successful like operations.",
		}),
		unlikes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "healthportal_unlikes_total",
			Help: "Successful unlike operations.",
		}),
		aiSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "healthportal_ai_generation_success_total",
			Help: "Completed AI generation calls.",
		}),
		aiFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "healthportal_ai_generation_failure_total",
			Help: "Failed AI generation calls.",
		}),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.likes,
		c.unlikes,
		c.aiSuccess,
		c.aiFailure,
	)

	return c
}

// RecordRequest records one served HTTP request.
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordLike records a successful like.
func (c *Collector) RecordLike() { c.likes.Inc() }

// RecordUnlike records a successful unlike.
func (c *Collector) RecordUnlike() { c.unlikes.Inc() }

// RecordGeneration records the outcome of an AI generation call.
func (c *Collector) RecordGeneration(ok bool) {
	if ok {
		c.aiSuccess.Inc()
	} else {
		c.aiFailure.Inc()
	}
}

// Handler returns the HTTP handler serving the metrics endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
