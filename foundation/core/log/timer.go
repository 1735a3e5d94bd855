// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and logs it on stop.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timers
// - 2026-10-18 v0.2.0: StopWithResult keeps the configured level

package log

import (
	"time"
)

// Timer measures the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer that logs through logger at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level used when the timer stops
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the completion. Subsequent calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.operation+" completed", nil)
}

// StopWithResult stops the timer and records whether the operation succeeded
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	t.fields["success"] = success
	if result != nil {
		t.fields["result"] = result
	}

	message := t.operation + " completed"
	if !success {
		message = t.operation + " failed"
	}
	return t.finish(message, nil)
}

// StopWithError stops the timer and logs the error at error level
func (t *Timer) StopWithError(err error) time.Duration {
	t.fields["success"] = false
	t.level = LevelError
	return t.finish(t.operation+" failed", err)
}

func (t *Timer) finish(message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1000000

	if t.logger != nil {
		t.logger.log(t.level, message, err, t.fields)
	}

	return elapsed
}
