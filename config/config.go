// Package config holds demo tuning loaded from TOML with built-in defaults
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the demo configuration, TOML keys in snake_case
type Config struct {
	// InitialPoolSize pre-allocates vector slots to avoid growth during steady play
	InitialPoolSize int `toml:"initial_pool_size"`
	// FrameRate in frames per second
	FrameRate int `toml:"frame_rate"`
	// MaxDelta caps per-frame dt after stalls
	MaxDelta Duration `toml:"max_delta"`

	PlayerSpeed float64 `toml:"player_speed"` // cells per second
	TurnRate    float64 `toml:"turn_rate"`    // radians per second

	Sound bool `toml:"sound"`
	Debug bool `toml:"debug"`
}

// Duration decodes TOML strings like "100ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		InitialPoolSize: 32,
		FrameRate:       60,
		MaxDelta:        Duration{100 * time.Millisecond},
		PlayerSpeed:     12,
		TurnRate:        4,
		Sound:           true,
	}
}

// Load reads path over Default, keys absent from the file keep default values
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}
	return cfg, cfg.Validate()
}

// Parse decodes TOML text over Default
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the frame loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.InitialPoolSize < 0:
		return fmt.Errorf("%w: initial_pool_size %d is negative", ErrInvalidConfig, c.InitialPoolSize)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate %d must be positive", ErrInvalidConfig, c.FrameRate)
	case c.MaxDelta.Duration < 0:
		return fmt.Errorf("%w: max_delta %v is negative", ErrInvalidConfig, c.MaxDelta.Duration)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("%w: player_speed %v is negative", ErrInvalidConfig, c.PlayerSpeed)
	}
	return nil
}

// FrameInterval returns the ticker period for FrameRate
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}
