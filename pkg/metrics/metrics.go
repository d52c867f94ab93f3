// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EligibilityEvaluations counts single profile-vs-rule evaluations.
	EligibilityEvaluations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "schemesense_eligibility_evaluations_total",
		Help: "Number of profile-vs-rule eligibility evaluations performed",
	})

	// MatchesReturned counts schemes returned as eligible, by category.
	MatchesReturned = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "schemesense_matches_returned_total",
		Help: "Number of schemes returned as eligible to users",
	}, []string{"category"})

	// ApplicationsCreated counts scheme applications submitted.
	ApplicationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "schemesense_applications_created_total",
		Help: "Number of scheme applications submitted",
	})

	// AdvisoryFallbacks counts advisory calls answered with the static
	// fallback because the upstream service failed.
	AdvisoryFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "schemesense_advisory_fallbacks_total",
		Help: "Number of advisory requests answered with the static fallback",
	})
)
