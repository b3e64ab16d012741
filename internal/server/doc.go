// Package server runs the relay's HTTP server.
//
// It covers startup, signal handling and graceful shutdown: SIGTERM, SIGINT
// and SIGQUIT stop accepting messages and let in-flight ones finish.
package server
