package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/plinko/board"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Economy.StartingBalance != 1000 || cfg.Economy.SpawnCost != 100 || cfg.Economy.PayoutBase != 100 {
		t.Errorf("unexpected economy defaults %+v", cfg.Economy)
	}
	if cfg.History.Capacity != 9 {
		t.Errorf("history capacity = %d, want 9", cfg.History.Capacity)
	}
	if cfg.Feedback.ShakeDuration.Duration != 200*time.Millisecond || cfg.Feedback.ShakeIntensity != 5 {
		t.Errorf("unexpected feedback defaults %+v", cfg.Feedback)
	}
}

func TestDefaultLayoutGeneratesReferenceBoard(t *testing.T) {
	b, err := board.Generate(Default().Layout())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(b.Zones) != 17 {
		t.Errorf("zones = %d, want 17", len(b.Zones))
	}
}

func TestDecodeTOML(t *testing.T) {
	cfg := Default()
	data := []byte(`
[economy]
starting_balance = 250.0
allow_grant = false

[feedback]
shake_duration = "350ms"

[history]
capacity = 4
`)
	if err := Decode(cfg, data, ".toml"); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Economy.StartingBalance != 250 || cfg.Economy.AllowGrant {
		t.Errorf("economy = %+v", cfg.Economy)
	}
	if cfg.Feedback.ShakeDuration.Duration != 350*time.Millisecond {
		t.Errorf("shake duration = %v", cfg.Feedback.ShakeDuration)
	}
	if cfg.History.Capacity != 4 {
		t.Errorf("capacity = %d", cfg.History.Capacity)
	}
	// Untouched sections keep their defaults
	if cfg.Economy.SpawnCost != 100 {
		t.Errorf("spawn cost = %g, want default 100", cfg.Economy.SpawnCost)
	}
}

func TestDecodeYAML(t *testing.T) {
	cfg := Default()
	data := []byte(`
ball:
  jitter: 0
  auto_drop_interval: 250ms
monitor:
  addr: "127.0.0.1:8080"
`)
	if err := Decode(cfg, data, ".yml"); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Ball.Jitter != 0 || cfg.Ball.AutoDropInterval.Duration != 250*time.Millisecond {
		t.Errorf("ball = %+v", cfg.Ball)
	}
	if cfg.Monitor.Addr != "127.0.0.1:8080" {
		t.Errorf("monitor addr = %q", cfg.Monitor.Addr)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if err := Decode(Default(), []byte("[economy]\nstarting_balanse = 5.0\n"), ".toml"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("toml: expected ErrInvalidConfig, got %v", err)
	}
	if err := Decode(Default(), []byte("economy:\n  starting_balanse: 5\n"), ".yaml"); err == nil {
		t.Error("yaml: expected unknown field error")
	}
	if err := Decode(Default(), []byte("{}"), ".json"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("json: expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero history", func(c *Config) { c.History.Capacity = 0 }},
		{"zero rows", func(c *Config) { c.Board.Rows = 0 }},
		{"negative cost", func(c *Config) { c.Economy.SpawnCost = -1 }},
		{"zero shake", func(c *Config) { c.Feedback.ShakeDuration = Dur(0) }},
		{"floor above drop", func(c *Config) { c.Ball.FloorY = 300 }},
		{"zero tick", func(c *Config) { c.Engine.TickInterval = Dur(0) }},
		{"restitution", func(c *Config) { c.Physics.Restitution = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	data, err := Encode(Default())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "plinko.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(*cfg, *Default()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	if err := os.WriteFile(env, []byte("PLINKO_SEED=42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvMonitorAddr, ":9999")
	t.Setenv(EnvAllowGrant, "false")
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)
	t.Cleanup(func() { os.Unsetenv(EnvSeed) })

	cfg := Default()
	if err := cfg.LoadEnv(env); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if cfg.Monitor.Addr != ":9999" || cfg.Economy.AllowGrant {
		t.Errorf("overrides not applied: %+v %+v", cfg.Monitor, cfg.Economy)
	}
	if cfg.Engine.Seed != 42 {
		t.Errorf("seed = %d, want 42 from dotenv", cfg.Engine.Seed)
	}

	if err := Default().LoadEnv(filepath.Join(dir, "absent.env")); err != nil {
		t.Errorf("missing dotenv should be ignored: %v", err)
	}
}

func TestLoadEnvRejectsBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")
	if err := Default().LoadEnv(""); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
