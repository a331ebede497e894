package factory

import (
	"github.com/pandaescape/panda/archetypes"
	"github.com/pandaescape/panda/components"
	"github.com/pandaescape/panda/config"
	"github.com/pandaescape/panda/levels"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateDecoration spawns a cosmetic prop with its ping-pong tween.
func CreateDecoration(w donburi.World, d levels.Decor, cfg *config.Config) *donburi.Entry {
	deco := archetypes.Decoration.Spawn(w)

	data := components.DecorationData{Kind: d.Kind, X: d.X, Y: d.Y}
	switch d.Kind {
	case levels.DecorPalm:
		data.From = float32(-cfg.Decoration.PalmSwayRadians)
		data.To = float32(cfg.Decoration.PalmSwayRadians)
		data.Seconds = float32(cfg.Decoration.PalmSwaySeconds)
	case levels.DecorWave:
		data.To = float32(cfg.Decoration.WaveBobPixels)
		data.Seconds = float32(cfg.Decoration.WaveBobSeconds)
	case levels.DecorFish:
		data.To = float32(cfg.Decoration.FishHopPixels)
		data.Seconds = float32(cfg.Decoration.FishHopSeconds)
	}
	data.Value = data.From
	data.Tween = gween.New(data.From, data.To, data.Seconds, DecorationEasing(d.Kind))

	components.Decoration.SetValue(deco, data)
	return deco
}

// DecorationEasing picks the easing curve for a decoration kind.
func DecorationEasing(kind levels.DecorKind) ease.TweenFunc {
	if kind == levels.DecorFish {
		return ease.OutQuad
	}
	return ease.InOutSine
}
