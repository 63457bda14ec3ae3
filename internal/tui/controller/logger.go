package controller

import (
	"colorpick/internal/tui/model"
	"colorpick/pkg/logging"
)

const controllerSubsystem = "Controller"
const tuiSubsystem = "TUI"

// LogDebug logs a debug-level message when the popup runs in debug mode.
func LogDebug(m *model.Model, subsystem string, format string, a ...interface{}) {
	if m != nil && m.DebugMode {
		logging.Debug(subsystem, format, a...)
	}
}

// LogInfo logs an informational message.
func LogInfo(subsystem string, format string, a ...interface{}) {
	logging.Info(subsystem, format, a...)
}

// LogError logs an error message.
func LogError(subsystem string, err error, format string, a ...interface{}) {
	logging.Error(subsystem, err, format, a...)
}
