package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "plinko.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a no-op logger unless debug is set
// Debug logs go to logs/plinko.log as JSON lines, never to the terminal;
// a file above maxLogSize is renamed with a timestamp first
func setupLogging(debug bool) (*zap.Logger, *os.File, error) {
	if !debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("plinko_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zc := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zap.DebugLevel)
	return zap.New(zc, zap.AddCaller()), f, nil
}
