package metrics

import (
	"bytes"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/handler"
)

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

func TestCollector(t *testing.T) {
	stats := handler.NewStats()
	stats.IncrementDispatched(core.ErrorLevel)
	stats.IncrementDispatched(core.DebugLevel)
	stats.IncrementDispatched(core.DebugLevel)
	stats.IncrementFailed()

	families, err := NewRegistry(ProviderFunc(stats.GetSnapshot)).Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	dispatched := byName["godotlog_records_dispatched_total"]
	require.NotNil(t, dispatched, "dispatched counter must be registered")
	assert.Len(t, dispatched.GetMetric(), 5)

	values := make(map[string]float64)
	for _, m := range dispatched.GetMetric() {
		values[labelValue(m, "channel")+"/"+labelValue(m, "level")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, 1.0, values["warning/error"])
	assert.Equal(t, 0.0, values["warning/warn"])
	assert.Equal(t, 2.0, values["standard/debug"])

	failures := byName["godotlog_write_failures_total"]
	require.NotNil(t, failures)
	assert.Equal(t, 1.0, failures.GetMetric()[0].GetCounter().GetValue())
}

func TestCollector_ReadsOnScrape(t *testing.T) {
	stats := handler.NewStats()
	reg := NewRegistry(ProviderFunc(stats.GetSnapshot))

	var before bytes.Buffer
	require.NoError(t, WriteText(&before, reg))
	assert.Contains(t, before.String(), "godotlog_write_failures_total 0")

	stats.IncrementFailed()
	stats.IncrementFailed()

	var after bytes.Buffer
	require.NoError(t, WriteText(&after, reg))
	assert.Contains(t, after.String(), "godotlog_write_failures_total 2")
	assert.Contains(t, after.String(), `godotlog_records_dispatched_total{channel="standard",level="info"} 0`)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "warning", Channel(core.ErrorLevel))
	assert.Equal(t, "warning", Channel(core.WarnLevel))
	assert.Equal(t, "standard", Channel(core.InfoLevel))
	assert.Equal(t, "standard", Channel(core.TraceLevel))
}
