// Package metrics defines the custom Prometheus metrics shared by the auth,
// suggestions and weather services. It is the single source of truth for
// metric names, labels, and help strings.
//
// All metrics are registered with the default Prometheus registry at package
// initialisation; HTTP-level metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cityweather"

// ── Auth metrics ─────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts signup attempts.
// Label:
//   - result: "success", "conflict" or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks on protected endpoints.
// Label:
//   - result: "ok", "missing" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Upstream metrics ─────────────────────────────────────────────────────────

// UpstreamRequestsTotal counts calls to the geocoding and weather providers.
// Labels:
//   - provider: "geocoding" or "weather"
//   - outcome:  "ok", "not_found" or "error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of upstream provider calls, by provider and outcome.",
	},
	[]string{"provider", "outcome"},
)

// UpstreamRequestDuration measures the latency of a single provider call.
// Label:
//   - provider: "geocoding" or "weather"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of upstream provider calls.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"provider"},
)
