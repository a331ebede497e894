// Package levels holds the handcrafted level layouts. Layouts are plain
// geometry; systems/factory turns them into entities.
package levels

import (
	"errors"
	"fmt"

	"github.com/pandaescape/panda/gamemath"
)

var (
	// ErrUnknownLevel is returned for an index with no layout.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrInvalidLayout is returned when a layout breaks a construction rule.
	ErrInvalidLayout = errors.New("invalid level layout")
)

// DecorKind selects how a decoration is animated and drawn.
type DecorKind int

const (
	DecorPalm DecorKind = iota
	DecorWave
	DecorFish
)

// Stalk is a bamboo climb surface anchored at its top-left corner.
// Collectible stalks are short shoots picked up on contact.
type Stalk struct {
	X, Y, Height float64
	Collectible  bool
}

// CageSpot places a cage by its top-left corner.
type CageSpot struct {
	X, Y   float64
	Animal string
}

// Patrol places an enemy at X, Y walking between Start and End.
type Patrol struct {
	X, Y       float64
	Start, End float64
}

// Decor is a cosmetic decoration.
type Decor struct {
	Kind DecorKind
	X, Y float64
}

// Layout is everything needed to build one level.
type Layout struct {
	Name          string
	Width, Height float64
	StartX        float64
	StartY        float64
	Platforms     []gamemath.Rect
	Bamboo        []Stalk
	Cages         []CageSpot
	Enemies       []Patrol
	Decorations   []Decor
}

// Count returns the number of defined levels.
func Count() int {
	return len(layouts)
}

// Get returns the layout for a 1-based level index.
func Get(index int) (Layout, error) {
	if index < 1 || index > len(layouts) {
		return Layout{}, fmt.Errorf("levels: get %d: %w", index, ErrUnknownLevel)
	}
	return layouts[index-1](), nil
}

// Validate checks the rules every playable layout must satisfy.
func (l Layout) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidLayout, l.Name, fmt.Sprintf(format, args...)))
	}

	if l.Width <= 0 || l.Height <= 0 {
		fail("size %vx%v must be positive", l.Width, l.Height)
	}
	if l.StartX < 0 || l.StartX >= l.Width || l.StartY < 0 || l.StartY >= l.Height {
		fail("player start (%v, %v) outside level", l.StartX, l.StartY)
	}
	if len(l.Platforms) == 0 {
		fail("no platforms")
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			fail("platform %d has empty size", i)
		}
	}
	for i, s := range l.Bamboo {
		if s.Height <= 0 {
			fail("bamboo %d has empty height", i)
		}
	}
	if len(l.Cages) == 0 {
		fail("no cages, level could never complete")
	}
	for i, e := range l.Enemies {
		if e.Start > e.End {
			fail("enemy %d patrol start %v after end %v", i, e.Start, e.End)
		}
		if e.X < e.Start || e.X > e.End {
			fail("enemy %d spawns at %v outside patrol [%v, %v]", i, e.X, e.Start, e.End)
		}
		if e.Y == l.StartY && e.Start <= l.StartX && l.StartX <= e.End {
			fail("enemy %d patrols over the player start at %v", i, l.StartX)
		}
	}
	return errors.Join(errs...)
}

var layouts = []func() Layout{
	jungleEdge,
	bambooCliffs,
}

func jungleEdge() Layout {
	return Layout{
		Name:   "Jungle Edge",
		Width:  1600,
		Height: 600,
		StartX: 100,
		StartY: 500,
		Platforms: []gamemath.Rect{
			gamemath.NewRect(0, 550, 1600, 50),
			gamemath.NewRect(100, 450, 200, 20),
			gamemath.NewRect(400, 350, 200, 20),
			gamemath.NewRect(200, 250, 200, 20),
			gamemath.NewRect(900, 450, 150, 20),
			gamemath.NewRect(1100, 380, 200, 20),
			gamemath.NewRect(1350, 300, 150, 20),
		},
		Bamboo: []Stalk{
			{X: 350, Y: 250, Height: 300},
			{X: 650, Y: 350, Height: 200},
			{X: 1050, Y: 330, Height: 220},
			{X: 480, Y: 320, Height: 30, Collectible: true},
			{X: 1180, Y: 350, Height: 30, Collectible: true},
			{X: 1370, Y: 270, Height: 30, Collectible: true},
		},
		Cages: []CageSpot{
			{X: 700, Y: 500, Animal: "monkey"},
			{X: 1400, Y: 250, Animal: "parrot"},
		},
		Enemies: []Patrol{
			{X: 400, Y: 500, Start: 300, End: 600},
			{X: 1200, Y: 500, Start: 1000, End: 1400},
		},
		Decorations: []Decor{
			{Kind: DecorWave, X: 0, Y: 300},
			{Kind: DecorFish, X: 760, Y: 310},
			{Kind: DecorPalm, X: 40, Y: 550},
			{Kind: DecorPalm, X: 820, Y: 550},
			{Kind: DecorPalm, X: 1540, Y: 550},
		},
	}
}

func bambooCliffs() Layout {
	return Layout{
		Name:   "Bamboo Cliffs",
		Width:  2000,
		Height: 600,
		StartX: 100,
		StartY: 500,
		Platforms: []gamemath.Rect{
			gamemath.NewRect(0, 550, 2000, 50),
			gamemath.NewRect(50, 450, 150, 20),
			gamemath.NewRect(300, 400, 150, 20),
			gamemath.NewRect(550, 350, 150, 20),
			gamemath.NewRect(300, 250, 150, 20),
			gamemath.NewRect(50, 200, 150, 20),
			gamemath.NewRect(850, 450, 150, 20),
			gamemath.NewRect(1100, 380, 150, 20),
			gamemath.NewRect(1350, 300, 150, 20),
			gamemath.NewRect(1650, 420, 200, 20),
		},
		Bamboo: []Stalk{
			{X: 250, Y: 200, Height: 350},
			{X: 500, Y: 250, Height: 300},
			{X: 700, Y: 350, Height: 200},
			{X: 1300, Y: 300, Height: 250},
			{X: 360, Y: 220, Height: 30, Collectible: true},
			{X: 1160, Y: 350, Height: 30, Collectible: true},
			{X: 1700, Y: 390, Height: 30, Collectible: true},
		},
		Cages: []CageSpot{
			{X: 100, Y: 150, Animal: "tiger"},
			{X: 1750, Y: 370, Animal: "red panda"},
		},
		Enemies: []Patrol{
			{X: 250, Y: 500, Start: 200, End: 450},
			{X: 600, Y: 500, Start: 500, End: 700},
			{X: 1500, Y: 500, Start: 1400, End: 1800},
		},
		Decorations: []Decor{
			{Kind: DecorWave, X: 0, Y: 280},
			{Kind: DecorFish, X: 950, Y: 290},
			{Kind: DecorFish, X: 1600, Y: 290},
			{Kind: DecorPalm, X: 20, Y: 550},
			{Kind: DecorPalm, X: 1020, Y: 550},
			{Kind: DecorPalm, X: 1950, Y: 550},
		},
	}
}
