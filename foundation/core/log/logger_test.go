// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context handling, formatters,
//              error integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-18 v0.2.0: Timer and formatter ordering tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/brackets/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Name:   "test-logger",
	})
	return logger, &buf
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}
	if logger.output != buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown warn")
	logger.Error("shown error")
	logger.Audit("shown audit")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output should not contain filtered entries: %s", out)
	}
	for _, want := range []string{"shown warn", "shown error", "shown audit"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestLogger_WithMethodsDoNotMutate(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	derived := base.WithField("component", "parser").WithRequestID("req-42")

	base.Info("from base")
	derived.Info("from derived")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if _, ok := first["component"]; ok {
		t.Error("base logger should not carry derived field")
	}
	if second["component"] != "parser" {
		t.Errorf("component = %v, want parser", second["component"])
	}
	if second["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", second["request_id"])
	}
	if second["logger"] != "test-logger" {
		t.Errorf("logger = %v, want test-logger", second["logger"])
	}
}

func TestTextFormatter_SortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)

	logger.Info("parsed", Fields{"zeta": 1, "alpha": 2, "mid": "x"})

	if !strings.Contains(buf.String(), "[alpha=2 mid=x zeta=1]") {
		t.Errorf("fields should be sorted: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "[INF]") {
		t.Errorf("level tag missing: %s", buf.String())
	}
}

func TestLogfmtFormatter(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)

	logger.Info("parsed", Fields{"input": "[[B](A)]", "position": 3})

	out := buf.String()
	for _, want := range []string{`message="parsed"`, `input="[[B](A)]"`, "position=3", "level=info"} {
		if !strings.Contains(out, want) {
			t.Errorf("logfmt output missing %q: %s", want, out)
		}
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	entry := NewEntry(LevelError, "boom")

	colored, err := NewConsoleFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(colored), LevelError.Color()) {
		t.Errorf("console output should start with color code: %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("output should not contain escape codes: %q", out)
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "syntax error logs at info",
			err:       mdwerror.New("unexpected symbol 'X' at pos 0").WithCode(mdwerror.CodeUnexpectedSymbol).WithDetail("position", 0),
			wantLevel: "info",
			wantCode:  string(mdwerror.CodeUnexpectedSymbol),
		},
		{
			name:      "config error logs at error",
			err:       mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  string(mdwerror.CodeInvalidConfig),
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			logger.LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && data["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", data["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogger_LogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatJSON)
	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Errorf("LogError(nil) should not write: %s", buf.String())
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	logger.Error("dropped")

	if logger.IsLevelEnabled(LevelError) {
		t.Error("discard logger should not enable error level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestTimer_Stop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	timer := logger.StartTimer("parse").WithField("input_length", 8)
	timer.Stop()

	if second := timer.Stop(); second != 0 {
		t.Errorf("second Stop() = %v, want 0", second)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["message"] != "parse completed" {
		t.Errorf("message = %v, want 'parse completed'", data["message"])
	}
	if data["operation"] != "parse" {
		t.Errorf("operation = %v, want parse", data["operation"])
	}
	if data["input_length"] != float64(8) {
		t.Errorf("input_length = %v, want 8", data["input_length"])
	}
}

func TestTimer_StopWithResult(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.StartTimer("parse").StopWithResult(false, "SQ(A)")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if data["level"] != "debug" {
		t.Errorf("level = %v, want debug", data["level"])
	}
	if data["message"] != "parse failed" {
		t.Errorf("message = %v, want 'parse failed'", data["message"])
	}
	if data["success"] != false {
		t.Errorf("success = %v, want false", data["success"])
	}
}
