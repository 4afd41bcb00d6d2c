package server

// Server is the lookup service process. RunServer blocks until a stop signal
// arrives; Shutdown drains in-flight searches within a bounded timeout.
type Server interface {
	RunServer()
	Shutdown()
}
