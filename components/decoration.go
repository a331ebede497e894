package components

import (
	"github.com/pandaescape/panda/levels"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DecorationData animates a cosmetic prop back and forth between From and To.
type DecorationData struct {
	Kind    levels.DecorKind
	X, Y    float64
	From    float32
	To      float32
	Seconds float32
	Tween   *gween.Tween
	Value   float32
}

var Decoration = donburi.NewComponentType[DecorationData]()
