package models

// Prober issues one reachability probe against a target and returns the
// raw probe output. A non-nil error means the target did not answer; the
// probe's own timeout bounds how long the call blocks.
type Prober interface {
	Probe(target string) (string, error)
}

// Log is the durable, append-only measurement store. Insertion order is
// chronological order and is preserved by ReadAll.
type Log interface {
	Append(Measurement) error
	ReadAll() ([]Measurement, error)
	Close() error
}

// Renderer regenerates the live view from the full log contents.
type Renderer interface {
	Refresh([]Measurement) error
}
