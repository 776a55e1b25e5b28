package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pingmon/internal/config"
	"pingmon/internal/monitor"
	"pingmon/internal/probe"
	"pingmon/internal/store"
	"pingmon/internal/view"
	"pingmon/internal/web"
)

func main() {
	// Resolve configuration once, before the loop starts
	cfg := config.Resolve()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Fail fast if the probe capability is missing on this host
	prober, err := probe.New(cfg.Probe, cfg.Count, cfg.Timeout)
	if err != nil {
		log.Fatalf("Probe capability unavailable: %v", err)
	}

	// Open (or reopen) the measurement log
	measurementLog, err := store.Open(cfg.Store, cfg.LogPath)
	if err != nil {
		log.Fatalf("Failed to open measurement log: %v", err)
	}
	defer measurementLog.Close()

	liveView := view.New(cfg.Target, cfg.ViewPath)
	mon := monitor.New(cfg, prober, measurementLog, liveView)
	webServer := web.New(measurementLog, cfg.Target, cfg.Port)

	// Handle shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	mon.Start()

	go func() {
		if err := webServer.Start(); err != nil {
			log.Fatalf("Failed to start web server: %v", err)
		}
	}()

	log.Printf("Monitor started. Pinging %s every %v", cfg.Target, cfg.Interval)
	log.Printf("Live view: %s (also at http://localhost:%d)", liveView.Path(), cfg.Port)

	<-sigChan
	log.Println("Shutting down...")
	mon.Stop()
	mon.Wait()
}
