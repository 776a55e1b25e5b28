package models

import (
	"encoding/json"
	"time"

	"github.com/guregu/null/v5"
)

// Status reports whether a probe reached its target.
type Status int

const (
	StatusDown Status = iota
	StatusUp
)

const (
	statusUpString   = "up"
	statusDownString = "down"
)

func (s Status) String() string {
	if s == StatusUp {
		return statusUpString
	}
	return statusDownString
}

// ParseStatus maps a status token back to a Status. Anything other than
// "up" is treated as down.
func ParseStatus(token string) Status {
	if token == statusUpString {
		return StatusUp
	}
	return StatusDown
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	*s = ParseStatus(token)
	return nil
}

// Measurement is one timestamped probe outcome. Records are immutable:
// created once per sample, appended to the log, never rewritten.
type Measurement struct {
	Timestamp time.Time  `json:"timestamp"`
	Target    string     `json:"target"`
	Status    Status     `json:"status"`
	Latency   null.Float `json:"avg_response_time_ms"` // milliseconds, valid only when up
}

// Up reports whether the sample reached its target.
func (m Measurement) Up() bool {
	return m.Status == StatusUp
}
