package server

// Server defines the lifecycle contract of the relay server.
type Server interface {
	// RunServer serves requests until a stop signal arrives or the listener
	// fails, and returns the listener error if any.
	RunServer() error

	// Shutdown gracefully stops the server.
	Shutdown()
}
