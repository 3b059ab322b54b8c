// Package metrics exposes Prometheus counters for the donation platform.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the platform's Prometheus collectors.
type Metrics struct {
	Registry         *prometheus.Registry
	LoginAttempts    *prometheus.CounterVec
	DonationsCreated prometheus.Counter
	IntakeDecisions  *prometheus.CounterVec
}

// New creates and registers the platform collectors on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		Registry: registry,
		LoginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "donation_platform_login_attempts_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		DonationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "donation_platform_donations_created_total",
			Help: "Donations created.",
		}),
		IntakeDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "donation_platform_intake_decisions_total",
			Help: "Charity intake decisions by status.",
		}, []string{"status"}),
	}

	registry.MustRegister(m.LoginAttempts, m.DonationsCreated, m.IntakeDecisions)
	return m
}
