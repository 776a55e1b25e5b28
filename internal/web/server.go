package web

import (
	"fmt"
	"log"
	"net/http"

	"pingmon/internal/models"
)

// Server exposes the live view and the raw measurement log over HTTP, so
// the run can be watched without touching the artifact file. Every request
// reads the log fresh: the browser's reload is the view's refresh timer.
type Server struct {
	store  models.Log
	target string
	port   int
}

// New creates a new web server
func New(store models.Log, target string, port int) *Server {
	return &Server{
		store:  store,
		target: target,
		port:   port,
	}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/measurements", s.handleMeasurements)
	mux.HandleFunc("/", s.handleView)

	log.Printf("Web server starting on port %d", s.port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}
