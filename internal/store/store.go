package store

import (
	"fmt"

	"pingmon/internal/config"
	"pingmon/internal/models"
)

// Open creates or reopens the measurement log named by kind. An existing
// log is reopened and new measurements are appended after the last record.
func Open(kind, path string) (models.Log, error) {
	switch kind {
	case config.StoreCSV:
		return OpenCSV(path)
	case config.StoreSqlite:
		return OpenSqlite(path)
	default:
		return nil, fmt.Errorf("unknown store type %q", kind)
	}
}
