package monitor

import (
	"context"
	"log"
	"sync"
	"time"

	"pingmon/internal/config"
	"pingmon/internal/models"
)

// Monitor drives the sampling cycle: probe the target, parse the outcome,
// append it to the log, refresh the live view.
type Monitor struct {
	cfg    config.Config
	prober models.Prober
	store  models.Log
	view   models.Renderer
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new Monitor
func New(cfg config.Config, prober models.Prober, store models.Log, view models.Renderer) *Monitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		cfg:    cfg,
		prober: prober,
		store:  store,
		view:   view,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins sampling in the background.
func (m *Monitor) Start() {
	m.wg.Add(1)
	go m.run()
}

// run executes one cycle per tick. Cycles never overlap: a cycle that
// outlasts the interval delays the next one, which then starts immediately
// on the pending tick. Cancellation is only observed between cycles, so an
// in-flight measurement is always fully persisted before the loop stops.
func (m *Monitor) run() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	m.cycle()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.cycle()
		}
	}
}

// Stop requests a stop at the next cycle boundary.
func (m *Monitor) Stop() {
	log.Println("Stopping monitor...")
	m.cancel()
}

// Wait blocks until the sampling loop has stopped.
func (m *Monitor) Wait() {
	m.wg.Wait()
	log.Println("Monitor stopped")
}
