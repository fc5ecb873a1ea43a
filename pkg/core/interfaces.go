package core

// Logger interface for picking event logging
type Logger interface {
	Printf(format string, args ...interface{})
}
