// Package stats provides a minimal scoped metrics receiver backed by
// go-metrics. A StatsReceiver is passed down the call tree and scoped at
// each level, so instrument names stay hierarchical without the callees
// knowing where they sit.
package stats

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rcrowley/go-metrics"
)

const histogramSampleSize = 1028

// Counter is a monotonically increasing count.
type Counter interface {
	Inc(int64)
	Count() int64
}

// Gauge is an instantaneous value.
type Gauge interface {
	Update(int64)
	Value() int64
}

// Latency records callsite latency:
//
//	defer stat.Latency("fooLatency_ms").Time().Stop()
type Latency interface {
	Time() Stopwatch
}

// Stopwatch is a started Latency measurement.
type Stopwatch interface {
	Stop()
}

// StatsReceiver creates and scopes instruments. Instrument names are
// hierarchical, joined with '/'.
type StatsReceiver interface {
	// Scope returns a receiver that prefixes all instrument names with the
	// given scope elements:
	//
	//   stat.Scope("sched").Counter("ticks")  // registers "sched/ticks"
	Scope(scope ...string) StatsReceiver

	Counter(name ...string) Counter
	Gauge(name ...string) Gauge
	Latency(name ...string) Latency

	// Render marshals every registered instrument to JSON.
	Render(pretty bool) []byte
}

// NewStatsReceiver returns a receiver backed by a fresh go-metrics registry.
func NewStatsReceiver() StatsReceiver {
	return &defaultStatsReceiver{registry: metrics.NewRegistry()}
}

// NilStatsReceiver returns a receiver whose instruments discard everything.
// Useful as a default so callers never have to nil-check their stats.
func NilStatsReceiver(scope ...string) StatsReceiver {
	return nilStatsReceiver{}
}

type defaultStatsReceiver struct {
	registry metrics.Registry
	scope    []string
}

func (s *defaultStatsReceiver) Scope(scope ...string) StatsReceiver {
	return &defaultStatsReceiver{registry: s.registry, scope: s.scoped(scope...)}
}

func (s *defaultStatsReceiver) Counter(name ...string) Counter {
	return s.registry.GetOrRegister(s.scopedName(name...), metrics.NewCounter).(metrics.Counter)
}

func (s *defaultStatsReceiver) Gauge(name ...string) Gauge {
	return s.registry.GetOrRegister(s.scopedName(name...), metrics.NewGauge).(metrics.Gauge)
}

func (s *defaultStatsReceiver) Latency(name ...string) Latency {
	h := s.registry.GetOrRegister(s.scopedName(name...), newHistogram).(metrics.Histogram)
	return &latency{hist: h}
}

func (s *defaultStatsReceiver) Render(pretty bool) []byte {
	rendered := map[string]interface{}{}
	s.registry.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case metrics.Counter:
			rendered[name] = m.Count()
		case metrics.Gauge:
			rendered[name] = m.Value()
		case metrics.Histogram:
			snap := m.Snapshot()
			rendered[name] = map[string]interface{}{
				"count": snap.Count(),
				"min":   snap.Min(),
				"max":   snap.Max(),
				"mean":  snap.Mean(),
			}
		}
	})

	var bytes []byte
	var err error
	if pretty {
		bytes, err = json.MarshalIndent(rendered, "", "  ")
	} else {
		bytes, err = json.Marshal(rendered)
	}
	if err != nil {
		return []byte("{}")
	}
	return bytes
}

// Scoped name elements may not contain the path separator; it is replaced
// rather than rejected because names are sometimes built dynamically.
func (s *defaultStatsReceiver) scoped(scope ...string) []string {
	out := append([]string{}, s.scope...)
	for _, el := range scope {
		out = append(out, strings.Replace(el, "/", "_SLASH_", -1))
	}
	return out
}

func (s *defaultStatsReceiver) scopedName(name ...string) string {
	return strings.Join(s.scoped(name...), "/")
}

func newHistogram() metrics.Histogram {
	return metrics.NewHistogram(metrics.NewUniformSample(histogramSampleSize))
}

type latency struct {
	hist metrics.Histogram
}

func (l *latency) Time() Stopwatch {
	return &stopwatch{start: time.Now(), hist: l.hist}
}

type stopwatch struct {
	start time.Time
	hist  metrics.Histogram
}

func (s *stopwatch) Stop() {
	s.hist.Update(int64(time.Since(s.start) / time.Millisecond))
}

type nilStatsReceiver struct{}

func (s nilStatsReceiver) Scope(scope ...string) StatsReceiver { return s }
func (s nilStatsReceiver) Counter(name ...string) Counter      { return metrics.NilCounter{} }
func (s nilStatsReceiver) Gauge(name ...string) Gauge          { return metrics.NilGauge{} }
func (s nilStatsReceiver) Latency(name ...string) Latency      { return nilLatency{} }
func (s nilStatsReceiver) Render(pretty bool) []byte           { return []byte("{}") }

type nilLatency struct{}
type nilStopwatch struct{}

func (nilLatency) Time() Stopwatch { return nilStopwatch{} }
func (nilStopwatch) Stop()         {}
