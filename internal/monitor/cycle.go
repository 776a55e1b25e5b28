package monitor

import (
	"log"
	"time"

	"pingmon/internal/parse"
)

// cycle runs one probe -> parse -> persist -> render pass. A failure in
// any stage is contained to that stage: the loop always reaches the next
// cycle, and only a persistence failure costs that cycle its record.
func (m *Monitor) cycle() {
	now := time.Now().Truncate(time.Second)

	raw, err := m.prober.Probe(m.cfg.Target)
	if err != nil {
		log.Printf("Probe failed for %s: %v", m.cfg.Target, err)
		raw = ""
	}

	measurement := parse.Measurement(m.cfg.Target, raw, now)
	if measurement.Up() {
		log.Printf("%s is up, avg rtt %.1f ms", m.cfg.Target, measurement.Latency.Float64)
	} else {
		log.Printf("%s is down", m.cfg.Target)
	}

	if err := m.store.Append(measurement); err != nil {
		log.Printf("Failed to persist measurement: %v", err)
	}

	all, err := m.store.ReadAll()
	if err != nil {
		log.Printf("Failed to read log for rendering: %v", err)
		return
	}
	if err := m.view.Refresh(all); err != nil {
		log.Printf("Failed to refresh live view: %v", err)
	}
}
