// Package metrics exposes sink dispatch statistics as Prometheus metrics.
package metrics

import (
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/philipp01105/godotlog/core"
	"github.com/philipp01105/godotlog/handler"
)

const namespace = "godotlog"

// Collector reads a StatsProvider on every scrape. Counters are reported
// as const metrics so the provider stays the single source of truth.
type Collector struct {
	provider handler.StatsProvider

	dispatched *prometheus.Desc
	failures   *prometheus.Desc
}

// NewCollector creates a Collector over provider. Register it with
// prometheus.Registerer.MustRegister.
//   - godotlog_records_dispatched_total{channel,level} (counter)
//   - godotlog_write_failures_total (counter)
func NewCollector(provider handler.StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		dispatched: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "records_dispatched_total"),
			"Records written to the host console, by channel and level",
			[]string{"channel", "level"}, nil,
		),
		failures: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "write_failures_total"),
			"Console writes that failed or panicked",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.dispatched
	ch <- c.failures
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.provider.Stats()
	for _, level := range []core.Level{core.ErrorLevel, core.WarnLevel, core.InfoLevel, core.DebugLevel, core.TraceLevel} {
		ch <- prometheus.MustNewConstMetric(c.dispatched, prometheus.CounterValue,
			float64(snap.Dispatched[level]), Channel(level), strings.ToLower(level.String()))
	}
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(snap.FailedTotal))
}

// ProviderFunc adapts a snapshot function, such as logger.Stats, to a
// StatsProvider
type ProviderFunc func() handler.Snapshot

// Stats implements handler.StatsProvider
func (f ProviderFunc) Stats() handler.Snapshot {
	return f()
}

// Channel names the console channel records at level are written to
func Channel(level core.Level) string {
	if level.IsWarning() {
		return "warning"
	}
	return "standard"
}

// NewRegistry returns a registry holding only a Collector over provider
func NewRegistry(provider handler.StatsProvider) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(provider))
	return reg
}

// WriteText gathers g and writes it in the Prometheus text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
