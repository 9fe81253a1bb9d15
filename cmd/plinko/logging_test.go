package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdirTemp runs the test inside a fresh directory so logs/ is isolated
func chdirTemp(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logger, f, err := setupLogging(false)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when debug=false")
	}
	logger.Info("dropped")

	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logger, f, err := setupLogging(true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer f.Close()

	logger.Info("test log message")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"test log message"`) {
		t.Errorf("log content = %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, f, err := setupLogging(true)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log file is %d bytes", info.Size())
	}
}
