// Package metrics holds the Prometheus collectors of the scanner and the
// authority.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	DecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_decisions_total",
			Help: "Offline admission decisions by status and reason",
		},
		[]string{"status", "reason"},
	)

	RevocationUnknownTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scanner_revocation_unknown_total",
			Help: "Scans admitted while the revocation cache could not vouch for the ticket",
		},
	)

	ValidationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "scanner_validation_duration_seconds",
			Help:    "Duration of one offline validation including the queue write",
			Buckets: prometheus.DefBuckets,
		},
	)

	UploadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_uploads_total",
			Help: "Queued redemption upload attempts by outcome",
		},
		[]string{"outcome"},
	)

	QueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scanner_queue_depth",
			Help: "Redemptions waiting for upload",
		},
	)

	SyncPagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_sync_pages_total",
			Help: "Downloaded listing pages by resource and mode",
		},
		[]string{"resource", "mode"},
	)

	SyncErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scanner_sync_errors_total",
			Help: "Failed resource downloads",
		},
		[]string{"resource"},
	)

	Online = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scanner_online",
			Help: "1 while the authority answered the last ping",
		},
	)

	RedemptionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authority_redemptions_total",
			Help: "Redemption requests handled by the authority",
		},
		[]string{"status", "reason"},
	)
)

// RegisterScanner registers the scanner-side collectors with reg.
func RegisterScanner(reg prometheus.Registerer) {
	reg.MustRegister(
		DecisionsTotal,
		RevocationUnknownTotal,
		ValidationDuration,
		UploadsTotal,
		QueueDepth,
		SyncPagesTotal,
		SyncErrorsTotal,
		Online,
	)
}

// RegisterAuthority registers the authority-side collectors with reg.
func RegisterAuthority(reg prometheus.Registerer) {
	reg.MustRegister(RedemptionsTotal)
}

// Handler serves the collectors registered with g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
