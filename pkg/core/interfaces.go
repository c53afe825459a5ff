package core

// Logger interface for renderer output, allows different logging destinations
type Logger interface {
	Printf(format string, args ...interface{})
}
