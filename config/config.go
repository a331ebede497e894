package config

import "image/color"

// WindowConfig describes the viewport and tick rate.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed      float64 `yaml:"speed"`
	ClimbSpeed float64 `yaml:"climb_speed"`
	JumpPower  float64 `yaml:"jump_power"`

	// Physics
	Gravity          float64 `yaml:"gravity"`
	ClimbIdleDecay   float64 `yaml:"climb_idle_decay"`   // vy multiplier when idle on a climb surface
	RiseSnapDistance float64 `yaml:"rise_snap_distance"` // how close to a platform underside a rising jump must start to be blocked

	// Lives
	StartingLives     int `yaml:"starting_lives"`
	RespawnGraceTicks int `yaml:"respawn_grace_ticks"` // ticks after a spawn during which enemies are ignored

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig contains patrol enemy configuration
type EnemyConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ClimbConfig sizes bamboo stalks and shoots.
type ClimbConfig struct {
	Width float64 `yaml:"width"`
}

// CageConfig contains cage sizing and door animation timing.
type CageConfig struct {
	Size            float64 `yaml:"size"`
	DoorOpenSeconds float64 `yaml:"door_open_seconds"`
}

// CameraConfig contains camera follow settings.
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // fraction of the gap closed per tick
}

// ScoreConfig holds point values.
type ScoreConfig struct {
	CagePoints  int `yaml:"cage_points"`
	ShootPoints int `yaml:"shoot_points"`
}

// SpaceConfig sizes the resolv broadphase grid.
type SpaceConfig struct {
	CellSize int `yaml:"cell_size"`
}

// DecorationConfig controls cosmetic animation.
type DecorationConfig struct {
	PalmSwaySeconds  float64 `yaml:"palm_sway_seconds"`
	PalmSwayRadians  float64 `yaml:"palm_sway_radians"`
	WaveBobSeconds   float64 `yaml:"wave_bob_seconds"`
	WaveBobPixels    float64 `yaml:"wave_bob_pixels"`
	FishHopSeconds   float64 `yaml:"fish_hop_seconds"`
	FishHopPixels    float64 `yaml:"fish_hop_pixels"`
	WaveParallax     float64 `yaml:"wave_parallax"`
	BackdropParallax float64 `yaml:"backdrop_parallax"`
}

// DebugConfig contains developer toggles. Most are set from flags.
type DebugConfig struct {
	Enabled    bool `yaml:"enabled"`
	SkipMenu   bool `yaml:"skip_menu"`
	StartLevel int  `yaml:"start_level"`
	Watch      bool `yaml:"watch"`
}

// Theme holds the flat colours used by the renderers.
type Theme struct {
	Sky          color.RGBA
	Backdrop     color.RGBA
	Sea          color.RGBA
	Ground       color.RGBA
	Platform     color.RGBA
	Bamboo       color.RGBA
	Shoot        color.RGBA
	CageBars     color.RGBA
	CageOpen     color.RGBA
	Enemy        color.RGBA
	PandaWhite   color.RGBA
	PandaBlack   color.RGBA
	PalmTrunk    color.RGBA
	PalmLeaf     color.RGBA
	Fish         color.RGBA
	Text         color.RGBA
	TextAccent   color.RGBA
	Overlay      color.RGBA
	DebugOutline color.RGBA
}

// Config is the full game configuration. A *Config returned by Load is
// never mutated; reloading produces a new value.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Climb      ClimbConfig      `yaml:"climb"`
	Cage       CageConfig       `yaml:"cage"`
	Camera     CameraConfig     `yaml:"camera"`
	Score      ScoreConfig      `yaml:"score"`
	Space      SpaceConfig      `yaml:"space"`
	Decoration DecorationConfig `yaml:"decoration"`
	Debug      DebugConfig      `yaml:"debug"`
	Theme      Theme            `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
			Title:  "Panda Escape Adventure",
		},
		Player: PlayerConfig{
			Speed:             5,
			ClimbSpeed:        3,
			JumpPower:         15,
			Gravity:           0.8,
			ClimbIdleDecay:    0.5,
			RiseSnapDistance:  10,
			StartingLives:     3,
			RespawnGraceTicks: 90,
			Width:             40,
			Height:            40,
		},
		Enemy: EnemyConfig{
			Speed:  2,
			Width:  30,
			Height: 50,
		},
		Climb: ClimbConfig{
			Width: 10,
		},
		Cage: CageConfig{
			Size:            50,
			DoorOpenSeconds: 0.5,
		},
		Camera: CameraConfig{
			FollowSmoothing: 0.1,
		},
		Score: ScoreConfig{
			CagePoints:  100,
			ShootPoints: 10,
		},
		Space: SpaceConfig{
			CellSize: 16,
		},
		Decoration: DecorationConfig{
			PalmSwaySeconds:  2,
			PalmSwayRadians:  0.08,
			WaveBobSeconds:   1.5,
			WaveBobPixels:    6,
			FishHopSeconds:   0.8,
			FishHopPixels:    40,
			WaveParallax:     0.5,
			BackdropParallax: 0.25,
		},
		Debug: DebugConfig{
			StartLevel: 1,
		},
		Theme: Theme{
			Sky:          color.RGBA{R: 135, G: 206, B: 235, A: 255},
			Backdrop:     color.RGBA{R: 96, G: 160, B: 110, A: 255},
			Sea:          color.RGBA{R: 40, G: 110, B: 190, A: 255},
			Ground:       color.RGBA{R: 110, G: 80, B: 50, A: 255},
			Platform:     color.RGBA{R: 139, G: 69, B: 19, A: 255},
			Bamboo:       color.RGBA{R: 34, G: 139, B: 34, A: 255},
			Shoot:        color.RGBA{R: 150, G: 220, B: 90, A: 255},
			CageBars:     color.RGBA{R: 128, G: 128, B: 128, A: 255},
			CageOpen:     color.RGBA{R: 200, G: 200, B: 120, A: 255},
			Enemy:        color.RGBA{R: 255, G: 0, B: 0, A: 255},
			PandaWhite:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
			PandaBlack:   color.RGBA{R: 16, G: 16, B: 16, A: 255},
			PalmTrunk:    color.RGBA{R: 120, G: 85, B: 45, A: 255},
			PalmLeaf:     color.RGBA{R: 20, G: 150, B: 60, A: 255},
			Fish:         color.RGBA{R: 255, G: 160, B: 40, A: 255},
			Text:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
			TextAccent:   color.RGBA{R: 255, G: 215, B: 0, A: 255},
			Overlay:      color.RGBA{R: 0, G: 0, B: 0, A: 160},
			DebugOutline: color.RGBA{R: 255, G: 0, B: 255, A: 255},
		},
	}
}

// TickSeconds is the simulated duration of one tick.
func (c *Config) TickSeconds() float32 {
	return 1 / float32(c.Window.FPS)
}
