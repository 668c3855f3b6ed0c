// Package metrics declares the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dwellio"

// Sign-in outcomes recorded by the identity service.
const (
	OutcomeSuccess      = "success"
	OutcomeCreated      = "created"
	OutcomeLinked       = "linked"
	OutcomeValidation   = "validation"
	OutcomeNotFound     = "not_found"
	OutcomeWrongMethod  = "wrong_method"
	OutcomeInvalidPass  = "invalid_password"
	OutcomeConflict     = "conflict"
	OutcomeUnauthorized = "unauthorized"
	OutcomeError        = "error"
	MethodGoogle        = "google"
	MethodCredentials   = "credentials"
)

var (
	// HTTPRequestsTotal counts handled requests by route pattern, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "The total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "The request duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// SignInAttemptsTotal counts sign-in attempts by method and outcome.
	SignInAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_in_attempts_total",
		Help:      "The total number of sign-in attempts",
	}, []string{"method", "outcome"})

	// RegistrationsTotal counts registration attempts by outcome.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "The total number of credentials registration attempts",
	}, []string{"outcome"})

	// RateLimitExceededTotal counts requests rejected by the rate limiter.
	RateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limit_exceeded_total",
		Help:      "The total number of rate limit exceeded events",
	}, []string{"scope"})
)
