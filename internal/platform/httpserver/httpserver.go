// Package httpserver builds the process HTTP server with timeouts sized for
// webhook traffic.
package httpserver

import (
	"net/http"
	"time"
)

// New returns the configured server. Submissions are small JSON bodies, so
// the read timeouts stay tight; admin resync batches get headroom from the
// longer write timeout.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
