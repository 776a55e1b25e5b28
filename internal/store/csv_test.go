package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v5"

	"pingmon/internal/models"
)

func sampleAt(t *testing.T, offset int, up bool) models.Measurement {
	t.Helper()
	base := time.Date(2026, 3, 14, 10, 30, 0, 0, time.Local)
	m := models.Measurement{
		Timestamp: base.Add(time.Duration(offset) * 5 * time.Second),
		Target:    "8.8.8.8",
		Status:    models.StatusDown,
	}
	if up {
		m.Status = models.StatusUp
		m.Latency = null.FloatFrom(23.5 + float64(offset))
	}
	return m
}

func assertEqual(t *testing.T, got, want models.Measurement) {
	t.Helper()
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, want.Timestamp)
	}
	if got.Target != want.Target {
		t.Errorf("target = %q, want %q", got.Target, want.Target)
	}
	if got.Status != want.Status {
		t.Errorf("status = %v, want %v", got.Status, want.Status)
	}
	if got.Latency.Valid != want.Latency.Valid {
		t.Fatalf("latency present = %v, want %v", got.Latency.Valid, want.Latency.Valid)
	}
	if got.Latency.Valid && got.Latency.Float64 != want.Latency.Float64 {
		t.Errorf("latency = %v, want %v", got.Latency.Float64, want.Latency.Float64)
	}
}

func TestCSVAppendReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ping_results.csv")

	l, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	defer l.Close()

	up := sampleAt(t, 0, true)
	down := sampleAt(t, 1, false)

	for i, m := range []models.Measurement{up, down} {
		if err := l.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
		all, err := l.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll: %v", err)
		}
		if len(all) != i+1 {
			t.Fatalf("len(ReadAll()) = %d, want %d", len(all), i+1)
		}
		assertEqual(t, all[len(all)-1], m)
	}
}

func TestCSVHeaderAndColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ping_results.csv")

	l, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	if err := l.Append(sampleAt(t, 0, true)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	l.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "timestamp,host,status,avg_response_time_ms" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], ",up,") {
		t.Errorf("row = %q, want an up status column", lines[1])
	}
}

func TestCSVReopenAppendsAfterExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ping_results.csv")

	l, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	var want []models.Measurement
	for i := 0; i < 5; i++ {
		m := sampleAt(t, i, i%2 == 0)
		want = append(want, m)
		if err := l.Append(m); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	l.Close()

	// a process restart reopens the same file
	l, err = OpenCSV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer l.Close()

	sixth := sampleAt(t, 5, true)
	want = append(want, sixth)
	if err := l.Append(sixth); err != nil {
		t.Fatalf("Append after reopen: %v", err)
	}

	all, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("len(ReadAll()) = %d, want 6", len(all))
	}
	for i := range want {
		assertEqual(t, all[i], want[i])
	}

	// reopening must not have duplicated the header
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Count(string(raw), "timestamp,host") != 1 {
		t.Error("header written more than once")
	}
}

func TestCSVDownRowHasEmptyLatency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ping_results.csv")

	l, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	if err := l.Append(sampleAt(t, 0, false)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	l.Close()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if !strings.HasSuffix(lines[1], "down,") {
		t.Errorf("row = %q, want a down status and an empty latency cell", lines[1])
	}
}

func TestReadCSVSkipsTornTrailingRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ping_results.csv")

	l, err := OpenCSV(path)
	if err != nil {
		t.Fatalf("OpenCSV: %v", err)
	}
	if err := l.Append(sampleAt(t, 0, true)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	l.Close()

	// simulate a reader racing an append on a filesystem that exposed a
	// partial write
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if _, err := f.WriteString("2026-03-14 10:30:1"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	f.Close()

	all, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1 complete record", len(all))
	}
	assertEqual(t, all[0], sampleAt(t, 0, true))
}
