package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			opts := DefaultOptions(tt.level, logFile)
			opts.Console = false
			opts.Compress = false
			if err := InitWithOptions(opts); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fallback.log")

	opts := DefaultOptions("chatty", logFile)
	opts.Console = false
	if err := InitWithOptions(opts); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}

	Debug("debug message")
	Info("info message")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if strings.Contains(string(content), "DEBUG") {
		t.Error("unknown level did not fall back to info")
	}
	if !strings.Contains(string(content), "INFO") {
		t.Error("info message missing after fallback")
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("info", "/tmp/test.log")

	if opts.Path != "/tmp/test.log" {
		t.Errorf("expected path /tmp/test.log, got %s", opts.Path)
	}
	if !opts.Console {
		t.Error("expected Console to be true")
	}
	if opts.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", opts.MaxBackups)
	}
	if opts.MaxAgeDays != 7 {
		t.Errorf("expected MaxAgeDays 7, got %d", opts.MaxAgeDays)
	}
	if !opts.Compress {
		t.Error("expected Compress to be true")
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := Init("info", ""); err != nil {
		t.Fatalf("Init without file: %v", err)
	}
	if Log == nil {
		t.Error("global logger not set")
	}
}
