package logger

// Logger defines the logging interface used across the application.
// Messages are built from args the way fmt.Sprint does; structured
// fields are attached with With.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a child logger that adds the key-value pairs to every entry
	With(keysAndValues ...interface{}) Logger

	// Sync flushes buffered entries
	Sync() error
}
