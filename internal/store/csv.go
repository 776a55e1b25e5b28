package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/guregu/null/v5"

	"pingmon/internal/models"
)

// timeLayout is the human-readable timestamp written to the log.
const timeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"timestamp", "host", "status", "avg_response_time_ms"}

// CSVLog is an append-only measurement log in a CSV file that spreadsheet
// tools can open directly. Single writer; any number of readers may open
// the file while the writer is active.
type CSVLog struct {
	path string
	file *os.File
	w    *csv.Writer
}

// OpenCSV opens the log at path, writing the header row when the file is
// new or empty, otherwise appending after the last existing record.
func OpenCSV(path string) (*CSVLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log open failed: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("log stat failed: %w", err)
	}

	l := &CSVLog{path: path, file: file, w: csv.NewWriter(file)}
	if info.Size() == 0 {
		if err := l.writeRow(csvHeader); err != nil {
			file.Close()
			return nil, fmt.Errorf("log header write failed: %w", err)
		}
	}
	return l, nil
}

// Append writes one measurement row, flushed and synced before returning.
// The row reaches the file in a single write, so a reader racing the
// append sees either the previous end of file or the whole record.
func (l *CSVLog) Append(m models.Measurement) error {
	var latency string
	if m.Latency.Valid {
		latency = strconv.FormatFloat(m.Latency.Float64, 'f', -1, 64)
	}

	row := []string{
		m.Timestamp.Format(timeLayout),
		m.Target,
		m.Status.String(),
		latency,
	}
	if err := l.writeRow(row); err != nil {
		return fmt.Errorf("log append failed: %w", err)
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("log sync failed: %w", err)
	}
	return nil
}

func (l *CSVLog) writeRow(row []string) error {
	if err := l.w.Write(row); err != nil {
		return err
	}
	l.w.Flush()
	return l.w.Error()
}

// ReadAll returns every measurement in insertion order. It reads through
// its own handle so the live view and external tools can call it while
// the writer is active.
func (l *CSVLog) ReadAll() ([]models.Measurement, error) {
	return ReadCSV(l.path)
}

// Close closes the underlying file. Appended rows are already synced.
func (l *CSVLog) Close() error {
	return l.file.Close()
}

// ReadCSV reads a measurement log file independently of any writer. A
// malformed trailing record is skipped rather than failing the read.
func ReadCSV(path string) ([]models.Measurement, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("log read failed: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	var measurements []models.Measurement
	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		if first {
			first = false
			if len(record) > 0 && record[0] == csvHeader[0] {
				continue
			}
		}
		if m, ok := parseRecord(record); ok {
			measurements = append(measurements, m)
		}
	}
	return measurements, nil
}

func parseRecord(record []string) (models.Measurement, bool) {
	if len(record) < 4 {
		return models.Measurement{}, false
	}

	ts, err := time.ParseInLocation(timeLayout, record[0], time.Local)
	if err != nil {
		return models.Measurement{}, false
	}

	m := models.Measurement{
		Timestamp: ts,
		Target:    record[1],
		Status:    models.ParseStatus(record[2]),
	}
	if record[3] != "" {
		if v, err := strconv.ParseFloat(record[3], 64); err == nil {
			m.Latency = null.FloatFrom(v)
		}
	}
	return m, true
}
