package metrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	gometrics "github.com/hashicorp/go-metrics"
)

// NewInmem returns a go-metrics instance reporting to a fresh in-memory sink.
// Keys are not prefixed and no runtime or host metrics are collected.
func NewInmem(interval, retain time.Duration) (*gometrics.Metrics, *gometrics.InmemSink, error) {
	sink := gometrics.NewInmemSink(interval, retain)

	cfg := gometrics.DefaultConfig("")
	cfg.EnableHostname = false
	cfg.EnableRuntimeMetrics = false

	m, err := gometrics.New(cfg, sink)
	if err != nil {
		return nil, nil, err
	}
	return m, sink, nil
}

// Counters sums the counters held by sink across all retained intervals,
// keyed by their dot-joined name.
func Counters(sink *gometrics.InmemSink) map[string]int {
	totals := make(map[string]int)
	for _, interval := range sink.Data() {
		interval.RLock()
		for name, c := range interval.Counters {
			totals[name] += c.Count
		}
		interval.RUnlock()
	}
	return totals
}

// WriteCounters writes "name count" lines sorted by name.
func WriteCounters(w io.Writer, sink *gometrics.InmemSink) error {
	totals := Counters(sink)

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s %d\n", name, totals[name]); err != nil {
			return err
		}
	}
	return nil
}
