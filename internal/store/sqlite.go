package store

import (
	"database/sql"
	"fmt"

	"github.com/guregu/null/v5"
	_ "modernc.org/sqlite"

	"pingmon/internal/models"
)

// SqliteLog keeps the measurement log in a local sqlite database, for runs
// where downstream analysis happens in SQL rather than a spreadsheet.
type SqliteLog struct {
	db *sql.DB
}

// OpenSqlite opens or creates the log database at path.
func OpenSqlite(path string) (*SqliteLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// WAL keeps readers unblocked while the sampling loop appends
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA synchronous=NORMAL")

	schema := `
    CREATE TABLE IF NOT EXISTS measurements (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp DATETIME NOT NULL,
        target TEXT NOT NULL,
        status TEXT NOT NULL,
        avg_rtt_ms REAL
    );

    CREATE INDEX IF NOT EXISTS idx_measurements_timestamp ON measurements(timestamp);
    `
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("schema creation failed: %w", err)
	}

	return &SqliteLog{db: db}, nil
}

// Append inserts one measurement. Each insert is its own transaction, so
// readers never observe a partial record.
func (l *SqliteLog) Append(m models.Measurement) error {
	query := `
        INSERT INTO measurements (timestamp, target, status, avg_rtt_ms)
        VALUES (?, ?, ?, ?)
    `
	_, err := l.db.Exec(query,
		m.Timestamp,
		m.Target,
		m.Status.String(),
		m.Latency,
	)
	if err != nil {
		return fmt.Errorf("log append failed: %w", err)
	}
	return nil
}

// ReadAll returns every measurement in insertion order.
func (l *SqliteLog) ReadAll() ([]models.Measurement, error) {
	query := `
        SELECT timestamp, target, status, avg_rtt_ms
        FROM measurements
        ORDER BY id
    `
	rows, err := l.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("log read failed: %w", err)
	}
	defer rows.Close()

	var measurements []models.Measurement
	for rows.Next() {
		var m models.Measurement
		var status string
		var latency sql.NullFloat64
		if err := rows.Scan(&m.Timestamp, &m.Target, &status, &latency); err != nil {
			continue
		}
		m.Status = models.ParseStatus(status)
		if latency.Valid {
			m.Latency = null.FloatFrom(latency.Float64)
		}
		measurements = append(measurements, m)
	}

	return measurements, nil
}

// Close closes the database.
func (l *SqliteLog) Close() error {
	return l.db.Close()
}
