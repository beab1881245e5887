// Package logging adapts the process logger to the driven Logger port so
// services receive an injected logging capability instead of reaching for
// a global.
package logging

import (
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
	"github.com/caddraft/qrstamp-cli/internal/logger"
)

// Ensure Verbose implements the interface.
var _ driven.Logger = Verbose{}

// Verbose forwards diagnostics to the internal/logger package, which
// honours the --verbose flag.
type Verbose struct{}

// Info forwards to logger.Info.
func (Verbose) Info(format string, args ...any) {
	logger.Info(format, args...)
}

// Warn forwards to logger.Warn.
func (Verbose) Warn(format string, args ...any) {
	logger.Warn(format, args...)
}

// Error forwards to logger.Error.
func (Verbose) Error(format string, args ...any) {
	logger.Error(format, args...)
}
