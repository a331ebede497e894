package components

import (
	"github.com/pandaescape/panda/config"
	"github.com/yohamta/donburi"
)

// Facing is the direction the player sprite points.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Climb directions. Up is negative because y grows downward.
const (
	ClimbNone = 0
	ClimbUp   = -1
	ClimbDown = 1
)

// PlayerData is the panda's movement state. Position and size live on the
// entity's Object component.
type PlayerData struct {
	SpeedX, SpeedY float64
	Facing         Facing
	OnGround       bool
	Climbing       bool
	ClimbDirection int

	// Ticks left during which enemy contact is ignored.
	Grace int

	// Tunables copied from config at spawn.
	Speed            float64
	ClimbSpeed       float64
	JumpPower        float64
	Gravity          float64
	ClimbIdleDecay   float64
	RiseSnapDistance float64

	// Horizontal world bounds the player box must stay inside.
	BoundLeft, BoundRight float64
}

var Player = donburi.NewComponentType[PlayerData]()

// NewPlayerData returns a fresh player facing right with no velocity.
func NewPlayerData(cfg config.PlayerConfig, boundLeft, boundRight float64) PlayerData {
	return PlayerData{
		Facing:           FacingRight,
		Grace:            cfg.RespawnGraceTicks,
		Speed:            cfg.Speed,
		ClimbSpeed:       cfg.ClimbSpeed,
		JumpPower:        cfg.JumpPower,
		Gravity:          cfg.Gravity,
		ClimbIdleDecay:   cfg.ClimbIdleDecay,
		RiseSnapDistance: cfg.RiseSnapDistance,
		BoundLeft:        boundLeft,
		BoundRight:       boundRight,
	}
}

// Jump launches the player upward. It does nothing unless grounded.
func (p *PlayerData) Jump() {
	if !p.OnGround {
		return
	}
	p.SpeedY = -p.JumpPower
	p.OnGround = false
}

// Move sets horizontal intent: -1 left, 0 stop, 1 right. It is re-applied
// every tick from the held input state.
func (p *PlayerData) Move(direction int) {
	p.SpeedX = float64(direction) * p.Speed
}

// Climb starts climbing up (-1) or down (1). Only applies while on a climb surface.
func (p *PlayerData) Climb(direction int) {
	if !p.Climbing {
		return
	}
	p.ClimbDirection = direction
	p.SpeedY = float64(direction) * p.ClimbSpeed
}

// StopClimbing holds the player in place on a climb surface.
func (p *PlayerData) StopClimbing() {
	if !p.Climbing {
		return
	}
	p.ClimbDirection = ClimbNone
	p.SpeedY = 0
}

func (p *PlayerData) SetBoundaries(left, right float64) {
	p.BoundLeft = left
	p.BoundRight = right
}
