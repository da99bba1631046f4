package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

func TestMetrics_Observer(t *testing.T) {
	m := New()

	m.DocumentLinted("a.md", []lint.Finding{
		{RuleID: "adverbs", Severity: core.SeverityWarn},
		{RuleID: "adverbs", Severity: core.SeverityWarn},
		{RuleID: "knowledge-cutoff", Severity: core.SeverityFail},
	}, 2*time.Millisecond)
	m.DocumentLinted("b.md", nil, time.Millisecond)
	m.CheckerFailed("custom-script", errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.documents), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.findings.WithLabelValues("adverbs", "WARN")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.findings.WithLabelValues("knowledge-cutoff", "FAIL")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ruleErrors.WithLabelValues("custom-script")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RequestServed("/v1/lint", http.StatusOK)
	m.CheckerFailed("adverbs", errors.New("x"))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, text, `contentlint_rule_errors_total{rule="adverbs"} 1`)
	assert.Contains(t, text, `contentlint_http_requests_total{code="200",route="/v1/lint"} 1`)
	assert.True(t, strings.Contains(text, "go_goroutines"))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.CheckerFailed("adverbs", nil)
	assert.InDelta(t, 0, testutil.ToFloat64(b.ruleErrors.WithLabelValues("adverbs")), 0)
}
