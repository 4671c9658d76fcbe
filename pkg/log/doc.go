// Package log provides the logging abstraction used by ezladder components.
//
// The measurement packages never log; only the long-running pieces (the
// policy watcher and the CLI) do. They accept a [Logger] so that embedders
// can route messages into their own logging stack.
//
// # Usage
//
// Use the provided zerolog adapter:
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//
// Or use the no-op logger for testing:
//
//	logger := log.NewNoopLogger()
package log
