// Package server wires and runs the application's transport server.
//
// It owns the HTTP server lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured timeout.
package server
