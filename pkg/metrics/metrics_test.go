package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHelpers(t *testing.T) {
	// New registers on the default registry; create once for the package.
	m := New()

	m.ObservePlateVerification("existing")
	m.ObservePlateVerification("existing")
	m.ObserveChallengeAttempt("mismatch")
	m.ObserveSubmission("ok")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PlateVerifications.WithLabelValues("existing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ChallengeAttempts.WithLabelValues("mismatch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues("ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Submissions.WithLabelValues("failed")))
}

func TestObserveHelpers_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObservePlateVerification("new")
		m.ObserveChallengeAttempt("ok")
		m.ObserveSubmission("failed")
	})
}
