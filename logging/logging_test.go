package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_parseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if err != nil {
			t.Fatalf("parseLevel(%q): %s", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func Test_Setup_FileTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	logger, closeLog, err := Setup(Config{Level: "debug", File: path})
	if err != nil {
		t.Fatalf("Setup: %s", err)
	}

	logger.Info("hello", "tool", "get_qrs_info")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %s", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %s", err)
	}
	if !strings.Contains(string(data), `"tool":"get_qrs_info"`) {
		t.Errorf("log line not written, got: %s", data)
	}
}
