package model

import (
	"context"
	"errors"
	"fmt"

	"colorpick/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoSampler is returned when picking is not available.
var ErrNoSampler = errors.New("color picking is not available")

// ListenForLogEntriesCmd waits for the next log entry. The controller re-arms
// it after every entry; a closed channel ends the loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// StartSample builds a sampler for spec and returns the command that runs it.
// Any sample already in flight is cancelled first.
func (m *Model) StartSample(spec string) (tea.Cmd, error) {
	if m.NewSampler == nil {
		return nil, ErrNoSampler
	}
	s, err := m.NewSampler(spec)
	if err != nil {
		return nil, err
	}

	m.CancelSample()
	ctx, cancel := context.WithCancel(context.Background())
	m.SampleSeq++
	m.Sampling = true
	m.SampleCancel = cancel
	seq := m.SampleSeq

	logging.Debug("Sampler", "Starting sample #%d for %q", seq, spec)
	return func() tea.Msg {
		hex, err := s.Sample(ctx)
		if err != nil {
			return SampleResultMsg{Seq: seq, Err: fmt.Errorf("sample failed: %w", err)}
		}
		return SampleResultMsg{Seq: seq, Hex: hex}
	}, nil
}

// CancelSample stops the running sample, if any, and reports whether one was
// running.
func (m *Model) CancelSample() bool {
	if !m.Sampling {
		return false
	}
	if m.SampleCancel != nil {
		m.SampleCancel()
	}
	m.SampleCancel = nil
	m.Sampling = false
	return true
}

// AcceptSample reports whether msg belongs to the sample currently running
// and, if so, marks sampling as finished.
func (m *Model) AcceptSample(msg SampleResultMsg) bool {
	if !m.Sampling || msg.Seq != m.SampleSeq {
		return false
	}
	if m.SampleCancel != nil {
		m.SampleCancel()
	}
	m.SampleCancel = nil
	m.Sampling = false
	return true
}
