package metrics_test

import (
	"testing"

	"github.com/dom/floricola-erp/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuthEvent(t *testing.T) {
	m := metrics.New()

	m.AuthEvent("login", "success")
	m.AuthEvent("login", "success")
	m.AuthEvent("login", "invalid_credentials")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthEvents.WithLabelValues("login", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthEvents.WithLabelValues("login", "invalid_credentials")))
}

func TestAuthEvent_NilReceiver(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() { m.AuthEvent("login", "success") })
}
