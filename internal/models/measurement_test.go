package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/guregu/null/v5"
)

func TestStatusRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusUp, StatusDown} {
		if got := ParseStatus(s.String()); got != s {
			t.Errorf("ParseStatus(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if ParseStatus("gibberish") != StatusDown {
		t.Error("unknown tokens should parse as down")
	}
}

func TestMeasurementJSON(t *testing.T) {
	m := Measurement{
		Timestamp: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Target:    "8.8.8.8",
		Status:    StatusUp,
		Latency:   null.FloatFrom(23.5),
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Measurement
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Status != StatusUp {
		t.Errorf("status = %v, want up", got.Status)
	}
	if !got.Latency.Valid || got.Latency.Float64 != 23.5 {
		t.Errorf("latency = %v, want 23.5", got.Latency)
	}

	down := Measurement{Timestamp: m.Timestamp, Target: m.Target, Status: StatusDown}
	data, err = json.Marshal(down)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["status"] != "down" {
		t.Errorf("status JSON = %v, want \"down\"", decoded["status"])
	}
	if decoded["avg_response_time_ms"] != nil {
		t.Errorf("absent latency JSON = %v, want null", decoded["avg_response_time_ms"])
	}
}
