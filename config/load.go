package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after the file
const (
	EnvMonitorAddr = "PLINKO_MONITOR_ADDR"
	EnvSeed        = "PLINKO_SEED"
	EnvAllowGrant  = "PLINKO_ALLOW_GRANT"
	EnvMute        = "PLINKO_MUTE"
)

// Load reads path on top of Default and validates the result
// An empty path returns the validated defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(cfg, data, filepath.Ext(path)); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays data onto cfg; ext selects the format (".toml", ".yaml", ".yml")
// Unknown keys are rejected so typos do not silently fall back to defaults
func Decode(cfg *Config, data []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undec)
		}
		return nil
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
}

// Encode writes cfg as TOML, used to dump the effective configuration
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadEnv loads an optional dotenv file then applies PLINKO_* overrides
// A missing dotenv file is not an error
func (c *Config) LoadEnv(dotenvPath string) error {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	if v, ok := os.LookupEnv(EnvMonitorAddr); ok {
		c.Monitor.Addr = v
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSeed, err)
		}
		c.Engine.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvAllowGrant); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvAllowGrant, err)
		}
		c.Economy.AllowGrant = b
	}
	if v, ok := os.LookupEnv(EnvMute); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvMute, err)
		}
		c.Audio.Enabled = !b
	}
	return nil
}
