// Package metrics holds the prometheus collectors shared by the compositor,
// the layout resolver and the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Compositions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "caseprint_compositions_total",
		Help: "Compose calls by template and outcome.",
	}, []string{"template", "outcome"})

	ComposeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "caseprint_compose_duration_seconds",
		Help:    "Wall time of a compose call, asset loading included.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
	}, []string{"template"})

	SkippedAssets = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "caseprint_skipped_assets_total",
		Help: "Assets that failed to load and were left out of a composition.",
	}, []string{"kind"})

	LayoutFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caseprint_layout_fallbacks_total",
		Help: "Model lookups that fell back to the default layout.",
	})

	DroppedPathCommands = promauto.NewCounter(prometheus.CounterOpts{
		Name: "caseprint_dropped_path_commands_total",
		Help: "Unsupported SVG path commands skipped while parsing.",
	})
)

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "caseprint_http_requests_total",
	Help: "HTTP requests by route and status code.",
}, []string{"route", "code"})
