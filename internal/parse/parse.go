package parse

import (
	"regexp"
	"strconv"
	"time"

	"github.com/guregu/null/v5"

	"pingmon/internal/models"
)

// Probe output reports its round-trip summary in one of two shapes:
//
//	rtt min/avg/max/mdev = 20.147/23.512/27.220/2.902 ms        (linux)
//	round-trip min/avg/max/stddev = 44.3/45.1/46.0/0.5 ms       (macOS)
//	Minimum = 9ms, Maximum = 12ms, Average = 10ms               (windows)
//
// Both carry the average in milliseconds already; no unit conversion.
var (
	unixSummary    = regexp.MustCompile(`min/avg/max[^=]*=\s*[0-9.]+/([0-9.]+)/`)
	windowsAverage = regexp.MustCompile(`Average\s*=\s*([0-9]+(?:\.[0-9]+)?)\s*ms`)
)

// Measurement interprets raw probe output as one sample taken at the given
// time. Output with no recognizable average figure, including empty output
// from a failed probe, yields a down measurement with no latency. This is
// a total function: it never fails, whatever the input.
func Measurement(target, raw string, at time.Time) models.Measurement {
	m := models.Measurement{
		Timestamp: at,
		Target:    target,
		Status:    models.StatusDown,
	}
	if avg, ok := AverageRTT(raw); ok {
		m.Status = models.StatusUp
		m.Latency = null.FloatFrom(avg)
	}
	return m
}

// AverageRTT locates the average round-trip figure in either recognized
// output shape.
func AverageRTT(raw string) (float64, bool) {
	for _, re := range []*regexp.Regexp{unixSummary, windowsAverage} {
		if matches := re.FindStringSubmatch(raw); len(matches) > 1 {
			if avg, err := strconv.ParseFloat(matches[1], 64); err == nil {
				return avg, true
			}
		}
	}
	return 0, false
}
