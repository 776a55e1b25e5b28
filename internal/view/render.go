package view

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"pingmon/internal/models"
)

// refreshSeconds is the page's own reload cadence; it matches the sampling
// interval so an open browser tab tracks the log.
const refreshSeconds = 5

// Render produces the full live-view HTML page for the given log contents.
// It is a pure function of its input: identical measurements yield
// identical bytes, so regenerating without new data changes nothing.
func Render(target string, measurements []models.Measurement) ([]byte, error) {
	up, down := partition(measurements)

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&buf, "<meta http-equiv=\"refresh\" content=\"%d\">\n", refreshSeconds)
	fmt.Fprintf(&buf, "<title>Ping Monitor - %s</title>\n", html.EscapeString(target))
	buf.WriteString("<style>body { font-family: sans-serif; margin: 2em; }</style>\n")
	buf.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&buf, "<h1>Real-Time Ping Monitoring for %s</h1>\n", html.EscapeString(target))

	if len(up) < 2 {
		// the chart needs a non-degenerate time range
		fmt.Fprintf(&buf, "<p>Waiting for data: %d of %d samples reachable so far.</p>\n",
			len(up), len(measurements))
	} else if err := renderChart(&buf, target, measurements); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	fmt.Fprintf(&buf, "<p>%d samples, %d unreachable. Page reloads every %d seconds.</p>\n",
		len(measurements), len(down), refreshSeconds)
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

// renderChart draws latency over time as an inline SVG. Contiguous
// reachable runs become separate line segments, so unreachable periods
// show up as gaps; the unreachable samples themselves are marked along the
// bottom of the plotted range instead of being drawn as zero latency.
func renderChart(buf *bytes.Buffer, target string, measurements []models.Measurement) error {
	segments := upSegments(measurements)

	var series []chart.Series
	for _, seg := range segments {
		timestamps := make([]float64, 0, len(seg))
		values := make([]float64, 0, len(seg))
		for _, m := range seg {
			timestamps = append(timestamps, timeToFloat(m.Timestamp))
			values = append(values, m.Latency.Float64)
		}
		if len(seg) == 1 {
			// a lone point between gaps still deserves a mark
			timestamps = append(timestamps, timestamps[0])
			values = append(values, values[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name: target,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(0),
				StrokeWidth: 2,
				DotColor:    chart.GetDefaultColor(0),
				DotWidth:    3,
			},
			XValues: timestamps,
			YValues: values,
		})
	}

	if markers := downMarkers(measurements); len(markers) > 0 {
		series = append(series, chart.AnnotationSeries{
			Annotations: markers,
			Style: chart.Style{
				StrokeColor: drawing.ColorRed,
				FontSize:    8,
			},
		})
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("Response Time - %s", target),
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    20,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:  1200,
		Height: 400,
		XAxis: chart.XAxis{
			Name: "Time",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			ValueFormatter: chart.TimeValueFormatterWithFormat("15:04:05"),
		},
		YAxis: chart.YAxis{
			Name: "Response Time (ms)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			GridMajorStyle: chart.Style{
				StrokeColor: drawing.Color{R: 200, G: 200, B: 200, A: 255},
				StrokeWidth: 1.0,
			},
		},
		Series: series,
	}

	return graph.Render(chart.SVG, buf)
}

// partition splits the log into reachable and unreachable samples.
func partition(measurements []models.Measurement) (up, down []models.Measurement) {
	for _, m := range measurements {
		if m.Up() {
			up = append(up, m)
		} else {
			down = append(down, m)
		}
	}
	return up, down
}

// upSegments groups contiguous reachable runs, preserving order.
func upSegments(measurements []models.Measurement) [][]models.Measurement {
	var segments [][]models.Measurement
	var current []models.Measurement
	for _, m := range measurements {
		if m.Up() {
			current = append(current, m)
			continue
		}
		if len(current) > 0 {
			segments = append(segments, current)
			current = nil
		}
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// downMarkers places a labelled marker for each unreachable sample at the
// bottom of the plotted latency range.
func downMarkers(measurements []models.Measurement) []chart.Value2 {
	floor := minUpLatency(measurements)

	var markers []chart.Value2
	for _, m := range measurements {
		if m.Up() {
			continue
		}
		markers = append(markers, chart.Value2{
			XValue: timeToFloat(m.Timestamp),
			YValue: floor,
			Label:  "down",
		})
	}
	return markers
}

// timeToFloat matches the representation the chart's time value formatter
// expects for float x-values.
func timeToFloat(t time.Time) float64 {
	return float64(t.UnixNano())
}

func minUpLatency(measurements []models.Measurement) float64 {
	var floor float64
	found := false
	for _, m := range measurements {
		if !m.Up() {
			continue
		}
		if !found || m.Latency.Float64 < floor {
			floor = m.Latency.Float64
			found = true
		}
	}
	return floor
}
