package decoder

import (
	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/abidecoder/types"
)

const (
	metricDecode  = "decode"
	metricMethod  = "method"
	metricLog     = "log"
	metricMatched = "matched"
	metricUnknown = "unknown"
	metricSkipped = "skipped"
)

// MetricKey returns the full go-metrics key of a decoder counter.
func MetricKey(kind, outcome string) []string {
	return []string{types.ModuleName, metricDecode, kind, outcome}
}

func (d *Decoder) incrCounter(kind, outcome string) {
	key := MetricKey(kind, outcome)
	if d.metrics != nil {
		d.metrics.IncrCounter(key, 1)
		return
	}
	metrics.IncrCounter(key, 1)
}
