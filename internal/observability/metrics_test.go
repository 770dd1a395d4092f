package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Avangel08/furniro-sub001/internal/domain"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/auth/login", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/api/auth/login", "POST", 200, 12*time.Millisecond)
	m.RecordError("/api/auth/me", "GET", "NO_TOKEN")
	m.RecordLogin(domain.PrincipalStaff, LoginRejected)
	m.RecordRefresh(domain.PrincipalCustomer, true)
	m.RecordBannerChanges(2, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("POST", "/api/auth/login", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errorCount.WithLabelValues("GET", "/api/auth/me", "NO_TOKEN")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginCount.WithLabelValues("staff", LoginRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refreshCount.WithLabelValues("customer", "rotated")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bannerChanges.WithLabelValues("activated")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
		m.RecordLogin(domain.PrincipalStaff, LoginSucceeded)
		m.RecordRefresh(domain.PrincipalStaff, false)
		m.RecordBannerChanges(1, 1)
	})
}
