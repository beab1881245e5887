package driven

// Logger records operation history for diagnostics. It is injected into
// services rather than reached as a process-wide singleton so tests and
// embedding hosts can supply their own sink.
type Logger interface {
	// Info records normal operation progress.
	Info(format string, args ...any)

	// Warn records recoverable oddities, e.g. best-effort cleanup
	// failures.
	Warn(format string, args ...any)

	// Error records operation failures.
	Error(format string, args ...any)
}
