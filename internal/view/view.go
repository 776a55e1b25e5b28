package view

import (
	"fmt"
	"os"

	"pingmon/internal/models"
)

// View materializes the live view as a self-refreshing HTML file a browser
// can keep open for the lifetime of a run.
type View struct {
	target string
	path   string
}

// New creates a live view for the given target writing to path.
func New(target, path string) *View {
	return &View{target: target, path: path}
}

// Refresh regenerates the artifact from the full log contents.
func (v *View) Refresh(measurements []models.Measurement) error {
	page, err := Render(v.target, measurements)
	if err != nil {
		return err
	}
	return writeAtomic(v.path, page)
}

// Path returns the artifact location.
func (v *View) Path() string {
	return v.path
}

// writeAtomic replaces the artifact in a single rename so a browser reload
// never reads a half-written page.
func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("view write failed: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("view publish failed: %w", err)
	}
	return nil
}
