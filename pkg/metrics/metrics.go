// Package metrics exposes Prometheus counters for the claim and wallet workflows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the workflow counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	claimTransitions     *prometheus.CounterVec
	quotaRejections      *prometheus.CounterVec
	quotaResets          *prometheus.CounterVec
	versionConflicts     *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	earningsPosted       *prometheus.CounterVec
	earningFailures      *prometheus.CounterVec
	earnedAmount         prometheus.Counter
	penalties            prometheus.Counter
}

// New creates the counters and registers them with registerer, or the default registerer when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		claimTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_transitions_total",
			Help: "Claim state transitions by event and resulting status.",
		}, []string{"event", "status"}),
		quotaRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_quota_rejections_total",
			Help: "Claim submissions refused because the entitlement was exhausted.",
		}, []string{"category"}),
		quotaResets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_quota_resets_total",
			Help: "Entitlements reset by the allow-reset-for-testing override.",
		}, []string{"category"}),
		versionConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_version_conflicts_total",
			Help: "Optimistic concurrency conflicts on subscription writes, by operation.",
		}, []string{"operation"}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "claims_notification_failures_total",
			Help: "Best-effort notifications that could not be delivered.",
		}, []string{"kind"}),
		earningsPosted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_earnings_posted_total",
			Help: "Vendor earnings written to the wallet ledger, by payment method.",
		}, []string{"payment_method"}),
		earningFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_earning_failures_total",
			Help: "Vendor earnings that could not be posted, by reason.",
		}, []string{"reason"}),
		earnedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallet_earned_minor_units_total",
			Help: "Sum of posted vendor earnings in minor currency units.",
		}),
		penalties: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallet_penalties_total",
			Help: "Penalties applied to vendor wallets.",
		}),
	}

	registerer.MustRegister(
		m.claimTransitions,
		m.quotaRejections,
		m.quotaResets,
		m.versionConflicts,
		m.notificationFailures,
		m.earningsPosted,
		m.earningFailures,
		m.earnedAmount,
		m.penalties,
	)
	return m
}

func (m *Metrics) ClaimTransition(event, status string) {
	if m == nil {
		return
	}
	m.claimTransitions.WithLabelValues(event, status).Inc()
}

func (m *Metrics) QuotaRejected(category string) {
	if m == nil {
		return
	}
	m.quotaRejections.WithLabelValues(category).Inc()
}

func (m *Metrics) QuotaReset(category string) {
	if m == nil {
		return
	}
	m.quotaResets.WithLabelValues(category).Inc()
}

func (m *Metrics) VersionConflict(operation string) {
	if m == nil {
		return
	}
	m.versionConflicts.WithLabelValues(operation).Inc()
}

func (m *Metrics) NotificationFailed(kind string) {
	if m == nil {
		return
	}
	m.notificationFailures.WithLabelValues(kind).Inc()
}

// EarningPosted records a posted earning of amount minor units.
func (m *Metrics) EarningPosted(paymentMethod string, amount int64) {
	if m == nil {
		return
	}
	m.earningsPosted.WithLabelValues(paymentMethod).Inc()
	if amount > 0 {
		m.earnedAmount.Add(float64(amount))
	}
}

func (m *Metrics) EarningFailed(reason string) {
	if m == nil {
		return
	}
	m.earningFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) PenaltyApplied() {
	if m == nil {
		return
	}
	m.penalties.Inc()
}
