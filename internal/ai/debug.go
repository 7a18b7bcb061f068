package ai

import "sync/atomic"

// debugLoggingEnabled guards per-tick debug logging of the AI subsystem.
// A package flag is cheaper than asking the slog handler on every frame.
// Set via EnableDebugLogging() at startup from config.LogLevel.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables debug logging for AI subsystem.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
// Guard hot-path debug calls with it:
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("NPC state changed", "agent", name, "to", next)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
