// Package engine runs the failure simulation HTTP server: it assembles the
// simulation handler, health endpoints, and middleware into an http.Server
// with start/stop lifecycle management.
package engine
