// Package server runs the address lookup HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
