package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pandaescape/panda/levels"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the tuning file picked up from the working directory when
// no -config flag is given. It is optional.
const DefaultFile = "panda.yaml"

// ErrInvalidConfig is wrapped by every validation and parse failure.
var ErrInvalidConfig = errors.New("invalid config")

// Option adjusts a configuration after file and environment sources have
// been applied, before validation.
type Option func(*Config)

func WithDebug(enabled bool) Option {
	return func(c *Config) {
		if enabled {
			c.Debug.Enabled = true
		}
	}
}

func WithSkipMenu(skip bool) Option {
	return func(c *Config) {
		if skip {
			c.Debug.SkipMenu = true
		}
	}
}

// WithStartLevel overrides the first level played. Zero keeps the current value.
func WithStartLevel(level int) Option {
	return func(c *Config) {
		if level != 0 {
			c.Debug.StartLevel = level
		}
	}
}

func WithWatch(watch bool) Option {
	return func(c *Config) {
		c.Debug.Watch = watch
	}
}

// Load builds a configuration from defaults, the YAML file at path, the
// environment and finally opts. An empty path skips the file. A missing
// DefaultFile is not an error.
func Load(path string, getenv func(string) string, opts ...Option) (*Config, error) {
	c := Default()

	if path != "" {
		if err := c.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if getenv != nil {
		if err := c.mergeEnv(getenv); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultFile {
			return nil
		}
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: unmarshal %s: %w: %w", path, ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"WINDOW_WIDTH", &c.Window.Width},
		{"WINDOW_HEIGHT", &c.Window.Height},
		{"FPS", &c.Window.FPS},
	}
	for _, e := range ints {
		v := getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", e.key, v, ErrInvalidConfig)
		}
		*e.dst = n
	}

	if v := getenv("GAME_TITLE"); v != "" {
		c.Window.Title = v
	}

	if v := getenv("DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: DEBUG=%q: %w", v, ErrInvalidConfig)
		}
		c.Debug.Enabled = b
	}
	return nil
}

// Validate rejects values the simulation cannot run with. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, name, v))
		}
	}

	positive("window.width", float64(c.Window.Width))
	positive("window.height", float64(c.Window.Height))
	positive("window.fps", float64(c.Window.FPS))
	positive("player.speed", c.Player.Speed)
	positive("player.climb_speed", c.Player.ClimbSpeed)
	positive("player.jump_power", c.Player.JumpPower)
	positive("player.gravity", c.Player.Gravity)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.starting_lives", float64(c.Player.StartingLives))
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.width", c.Enemy.Width)
	positive("enemy.height", c.Enemy.Height)
	positive("climb.width", c.Climb.Width)
	positive("cage.size", c.Cage.Size)
	positive("cage.door_open_seconds", c.Cage.DoorOpenSeconds)
	positive("space.cell_size", float64(c.Space.CellSize))
	positive("decoration.palm_sway_seconds", c.Decoration.PalmSwaySeconds)
	positive("decoration.wave_bob_seconds", c.Decoration.WaveBobSeconds)
	positive("decoration.fish_hop_seconds", c.Decoration.FishHopSeconds)
	positive("debug.start_level", float64(c.Debug.StartLevel))

	if c.Debug.StartLevel > levels.Count() {
		errs = append(errs, fmt.Errorf("%w: debug.start_level %d, only %d levels exist", ErrInvalidConfig, c.Debug.StartLevel, levels.Count()))
	}
	if c.Player.RespawnGraceTicks < 0 {
		errs = append(errs, fmt.Errorf("%w: player.respawn_grace_ticks must not be negative, got %d", ErrInvalidConfig, c.Player.RespawnGraceTicks))
	}
	if c.Camera.FollowSmoothing <= 0 || c.Camera.FollowSmoothing > 1 {
		errs = append(errs, fmt.Errorf("%w: camera.follow_smoothing must be in (0, 1], got %v", ErrInvalidConfig, c.Camera.FollowSmoothing))
	}
	if c.Player.ClimbIdleDecay < 0 || c.Player.ClimbIdleDecay > 1 {
		errs = append(errs, fmt.Errorf("%w: player.climb_idle_decay must be in [0, 1], got %v", ErrInvalidConfig, c.Player.ClimbIdleDecay))
	}

	return errors.Join(errs...)
}
