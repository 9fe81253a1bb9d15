// Package config holds the tunables of a session. Defaults reproduce the
// reference game; a TOML or YAML file and PLINKO_* environment variables
// override them at startup.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/parameter"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration decoded from strings such as "200ms"
type Duration struct {
	time.Duration
}

// Dur wraps a time.Duration
func Dur(d time.Duration) Duration {
	return Duration{Duration: d}
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Config is the full session configuration
type Config struct {
	Economy  EconomyConfig  `toml:"economy" yaml:"economy"`
	Board    BoardConfig    `toml:"board" yaml:"board"`
	Ball     BallConfig     `toml:"ball" yaml:"ball"`
	Feedback FeedbackConfig `toml:"feedback" yaml:"feedback"`
	History  HistoryConfig  `toml:"history" yaml:"history"`
	Physics  PhysicsConfig  `toml:"physics" yaml:"physics"`
	Engine   EngineConfig   `toml:"engine" yaml:"engine"`
	Monitor  MonitorConfig  `toml:"monitor" yaml:"monitor"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio"`

	// Keys overrides key bindings: action name to key names, e.g. spawn = ["space", "w"]
	Keys map[string][]string `toml:"keys,omitempty" yaml:"keys,omitempty"`
}

type EconomyConfig struct {
	StartingBalance float64 `toml:"starting_balance" yaml:"starting_balance"`
	SpawnCost       float64 `toml:"spawn_cost" yaml:"spawn_cost"`
	PayoutBase      float64 `toml:"payout_base" yaml:"payout_base"`
	GrantAmount     float64 `toml:"grant_amount" yaml:"grant_amount"`
	AllowGrant      bool    `toml:"allow_grant" yaml:"allow_grant"` // Debug funds key; off disables the handler entirely
}

type BoardConfig struct {
	Rows           int     `toml:"rows" yaml:"rows"`
	FirstRowPegs   int     `toml:"first_row_pegs" yaml:"first_row_pegs"`
	SpacingX       float64 `toml:"spacing_x" yaml:"spacing_x"`
	SpacingY       float64 `toml:"spacing_y" yaml:"spacing_y"`
	TopY           float64 `toml:"top_y" yaml:"top_y"`
	PegRadius      float64 `toml:"peg_radius" yaml:"peg_radius"`
	PowerScale     float64 `toml:"power_scale" yaml:"power_scale"`
	CenterSlot     int     `toml:"center_slot" yaml:"center_slot"` // -1 = middle gap
	ZoneHalfExtent float64 `toml:"zone_half_extent" yaml:"zone_half_extent"`
	ZoneOffsetY    float64 `toml:"zone_offset_y" yaml:"zone_offset_y"`
}

type BallConfig struct {
	DropX            float64  `toml:"drop_x" yaml:"drop_x"`
	DropY            float64  `toml:"drop_y" yaml:"drop_y"`
	Radius           float64  `toml:"radius" yaml:"radius"`
	Jitter           int      `toml:"jitter" yaml:"jitter"`
	FloorY           float64  `toml:"floor_y" yaml:"floor_y"`
	FallRate         float64  `toml:"fall_rate" yaml:"fall_rate"`
	AutoDropInterval Duration `toml:"auto_drop_interval" yaml:"auto_drop_interval"`
}

type FeedbackConfig struct {
	ShakeDuration  Duration `toml:"shake_duration" yaml:"shake_duration"`
	ShakeIntensity float64  `toml:"shake_intensity" yaml:"shake_intensity"`
}

type HistoryConfig struct {
	Capacity int `toml:"capacity" yaml:"capacity"`
}

type PhysicsConfig struct {
	Substeps    int     `toml:"substeps" yaml:"substeps"`
	Gravity     float64 `toml:"gravity" yaml:"gravity"`
	Restitution float64 `toml:"restitution" yaml:"restitution"`
	MaxSpeed    float64 `toml:"max_speed" yaml:"max_speed"`
	CellSize    float64 `toml:"cell_size" yaml:"cell_size"`
}

type EngineConfig struct {
	TickInterval  Duration `toml:"tick_interval" yaml:"tick_interval"`
	FrameInterval Duration `toml:"frame_interval" yaml:"frame_interval"`
	Seed          uint64   `toml:"seed" yaml:"seed"` // 0 = time based
}

type MonitorConfig struct {
	Addr           string   `toml:"addr" yaml:"addr"` // Empty disables the monitor
	StreamInterval Duration `toml:"stream_interval" yaml:"stream_interval"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled" yaml:"enabled"`
	Volume     float64 `toml:"volume" yaml:"volume"`
	SampleRate int     `toml:"sample_rate" yaml:"sample_rate"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Economy: EconomyConfig{
			StartingBalance: parameter.StartingBalance,
			SpawnCost:       parameter.SpawnCost,
			PayoutBase:      parameter.PayoutBase,
			GrantAmount:     parameter.GrantAmount,
			AllowGrant:      true,
		},
		Board: BoardConfig{
			Rows:           parameter.BoardRows,
			FirstRowPegs:   parameter.FirstRowPegs,
			SpacingX:       parameter.PegSpacingX,
			SpacingY:       parameter.PegSpacingY,
			TopY:           parameter.BoardTopY,
			PegRadius:      parameter.PegRadius,
			PowerScale:     parameter.PowerScale,
			CenterSlot:     -1,
			ZoneHalfExtent: parameter.ZoneHalfExtent,
			ZoneOffsetY:    parameter.ZoneOffsetY,
		},
		Ball: BallConfig{
			DropX:            parameter.BallDropX,
			DropY:            parameter.BallDropY,
			Radius:           parameter.BallRadius,
			Jitter:           parameter.SpawnJitter,
			FloorY:           parameter.FloorY,
			FallRate:         parameter.FallRate,
			AutoDropInterval: Dur(parameter.AutoDropInterval),
		},
		Feedback: FeedbackConfig{
			ShakeDuration:  Dur(parameter.ShakeDuration),
			ShakeIntensity: parameter.ShakeIntensity,
		},
		History: HistoryConfig{
			Capacity: parameter.HistoryCapacity,
		},
		Physics: PhysicsConfig{
			Substeps:    parameter.PhysicsSubsteps,
			Gravity:     parameter.SolverGravity,
			Restitution: parameter.Restitution,
			MaxSpeed:    parameter.MaxBallSpeed,
			CellSize:    parameter.BroadphaseCellSize,
		},
		Engine: EngineConfig{
			TickInterval:  Dur(parameter.GameUpdateInterval),
			FrameInterval: Dur(parameter.FrameUpdateInterval),
		},
		Monitor: MonitorConfig{
			StreamInterval: Dur(parameter.MonitorStreamInterval),
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     parameter.AudioVolume,
			SampleRate: parameter.AudioSampleRate,
		},
	}
}

// Layout converts the board section into generator input
func (c *Config) Layout() board.Layout {
	b := c.Board
	return board.Layout{
		Rows:           b.Rows,
		FirstRowPegs:   b.FirstRowPegs,
		SpacingX:       b.SpacingX,
		SpacingY:       b.SpacingY,
		TopY:           b.TopY,
		PegRadius:      b.PegRadius,
		PowerScale:     b.PowerScale,
		CenterSlot:     b.CenterSlot,
		ZoneHalfExtent: b.ZoneHalfExtent,
		ZoneOffsetY:    b.ZoneOffsetY,
	}
}

// Validate enforces startup preconditions; any error is fatal for the session
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Economy.StartingBalance >= 0, "economy.starting_balance %g < 0", c.Economy.StartingBalance)
	check(c.Economy.SpawnCost >= 0, "economy.spawn_cost %g < 0", c.Economy.SpawnCost)
	check(c.Economy.PayoutBase >= 0, "economy.payout_base %g < 0", c.Economy.PayoutBase)
	check(c.Economy.GrantAmount >= 0, "economy.grant_amount %g < 0", c.Economy.GrantAmount)

	check(c.Ball.Radius > 0, "ball.radius must be positive")
	check(c.Ball.Jitter >= 0, "ball.jitter %d < 0", c.Ball.Jitter)
	check(c.Ball.FloorY < c.Ball.DropY, "ball.floor_y %g must be below drop_y %g", c.Ball.FloorY, c.Ball.DropY)
	check(c.Ball.FallRate >= 0, "ball.fall_rate %g < 0", c.Ball.FallRate)
	check(c.Ball.AutoDropInterval.Duration > 0, "ball.auto_drop_interval must be positive")

	check(c.Feedback.ShakeDuration.Duration > 0, "feedback.shake_duration must be positive")
	check(c.Feedback.ShakeIntensity >= 0, "feedback.shake_intensity %g < 0", c.Feedback.ShakeIntensity)

	check(c.History.Capacity >= 1, "history.capacity %d < 1", c.History.Capacity)

	check(c.Physics.Substeps >= 1, "physics.substeps %d < 1", c.Physics.Substeps)
	check(c.Physics.Restitution >= 0 && c.Physics.Restitution <= 1, "physics.restitution %g outside [0, 1]", c.Physics.Restitution)
	check(c.Physics.MaxSpeed >= 0, "physics.max_speed %g < 0", c.Physics.MaxSpeed)
	check(c.Physics.CellSize > 0, "physics.cell_size must be positive")

	check(c.Engine.TickInterval.Duration > 0, "engine.tick_interval must be positive")
	check(c.Engine.FrameInterval.Duration > 0, "engine.frame_interval must be positive")

	check(c.Monitor.StreamInterval.Duration > 0, "monitor.stream_interval must be positive")
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive")

	if err := c.Layout().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: board: %w", ErrInvalidConfig, err))
	}

	return errors.Join(errs...)
}
