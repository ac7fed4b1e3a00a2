package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is set")
	}
}

func TestInitializeFromEnvToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviedb.log")
	t.Setenv(LogLevelEnvVar, "info")
	t.Cleanup(func() { SetLogger(nil) })

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Info("hello from test")
	Debug("not written")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q, want info message", data)
	}
	if strings.Contains(string(data), "not written") {
		t.Error("debug message written at info level")
	}
}

func TestInitializeUnknownLevel(t *testing.T) {
	if err := Initialize("loud", ""); err == nil {
		t.Error("Initialize(loud) error = nil, want error")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"trace", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogActionLevels(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	LogAction("set_field", 6, "idle", zap.String("field", "title"))
	LogAction("submit", 7, "idle")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("set_field level = %v, want debug", entries[0].Level)
	}
	if entries[1].Level != zapcore.InfoLevel {
		t.Errorf("submit level = %v, want info", entries[1].Level)
	}
	ctx := entries[1].ContextMap()
	if ctx["action"] != "submit" || ctx["records"] != int64(7) || ctx["mode"] != "idle" {
		t.Errorf("context = %v", ctx)
	}
}

func TestLogRejected(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	LogRejected("submit", errors.New("Fill out form"))

	entries := logs.FilterMessage("Action rejected").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[0].Level)
	}
	if got := entries[0].ContextMap()["error"]; got != "Fill out form" {
		t.Errorf("error field = %v, want Fill out form", got)
	}
}
