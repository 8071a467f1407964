package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the onboarding engine
type Metrics struct {
	PlateVerifications *prometheus.CounterVec
	ChallengeAttempts  *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
}

var (
	registerOnce sync.Once
	registered   *Metrics
)

// New creates and registers all Prometheus metrics. Collectors go to the
// default registry, so repeated calls return the same instance.
func New() *Metrics {
	registerOnce.Do(func() {
		registered = &Metrics{
			PlateVerifications: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "onboarding_plate_verifications_total",
				Help: "Plate verifications by lookup outcome",
			}, []string{"outcome"}), // new, existing, invalid, error
			ChallengeAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "onboarding_ownership_challenge_attempts_total",
				Help: "Ownership challenge secret submissions by result",
			}, []string{"result"}), // ok, mismatch, exhausted
			Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "onboarding_submissions_total",
				Help: "Application submissions by result",
			}, []string{"result"}), // ok, failed
		}
	})
	return registered
}

// The observe helpers tolerate a nil receiver so usecases can run without a
// registry in tests.

func (m *Metrics) ObservePlateVerification(outcome string) {
	if m == nil {
		return
	}
	m.PlateVerifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveChallengeAttempt(result string) {
	if m == nil {
		return
	}
	m.ChallengeAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSubmission(result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result).Inc()
}
