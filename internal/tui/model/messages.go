package model

import "colorpick/pkg/logging"

// SampleResultMsg carries the outcome of one sampling run.
type SampleResultMsg struct {
	Seq int
	Hex string
	Err error
}

// NewLogEntryMsg carries a log entry from pkg/logging into the update loop.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg removes the current toast.
type ClearStatusBarMsg struct{}
