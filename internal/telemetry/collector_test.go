package telemetry

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := NewCollector(registry)

	c.RecordRequest(OutcomeOK, 2*time.Millisecond, 3, 2)
	c.RecordRequest(OutcomeOK, time.Millisecond, 1, 1)
	c.RecordRequest(OutcomeEmpty, time.Millisecond, 1, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.requestsTotal.WithLabelValues(OutcomeEmpty)))
	assert.Equal(t, 5.0, testutil.ToFloat64(c.branchesTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.formsTotal))
	assert.Same(t, registry, c.Registry())
}

func TestCollector_RecordChoice(t *testing.T) {
	c := NewCollector(nil)

	c.RecordChoice("7.2.63", "accept")
	c.RecordChoice("7.2.63", "decline")
	c.RecordChoice("7.2.63", "decline")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.choicesTotal.WithLabelValues("7.2.63", "accept")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.choicesTotal.WithLabelValues("7.2.63", "decline")))
}

func TestCollector_WriteText(t *testing.T) {
	c := NewCollector(nil)
	c.RecordRequest(OutcomeOK, time.Millisecond, 1, 1)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	assert.Contains(t, buf.String(), `prakriya_derive_requests_total{outcome="ok"} 1`)
	assert.Contains(t, buf.String(), "# TYPE prakriya_derive_duration_seconds histogram")
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.RecordRequest(OutcomeError, time.Second, 1, 0)
		c.RecordChoice("6.4.30", "accept")
	})
	assert.Nil(t, c.Registry())
	assert.NoError(t, c.WriteText(&bytes.Buffer{}))
}
