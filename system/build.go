package system

import (
	"github.com/jakecoffman/cp"
	"github.com/takugotora12/app05game/common"
	"github.com/takugotora12/app05game/component"
	"github.com/takugotora12/app05game/obj"
	"github.com/takugotora12/app05game/prefabs"
)

// FieldFromTuning returns the play field described by t.
func FieldFromTuning(t *prefabs.Tuning) common.Field {
	return common.Field{Width: t.Field.Width, Height: t.Field.Height}
}

// BuildPlayer creates the ship described by t.Ship. The returned player's
// Field points at a copy of the tuning field when keep_inside is set.
func BuildPlayer(t *prefabs.Tuning, res Resources) *obj.PlayerSprite {
	s := t.Ship
	p := obj.NewPlayerSprite(res.Image(s.Sprite), s.X, s.Y)
	p.Direction = cp.Vector{X: s.DirectionX, Y: s.DirectionY}
	p.Speed = s.Speed
	p.Scale = s.Scale
	p.Health = component.NewHealth(s.Health)
	p.TurnStep = s.TurnStep
	if s.Control == "free" {
		p.Control = obj.Free
	} else {
		p.Control = obj.Rotational
	}
	if s.KeepInside != nil && *s.KeepInside {
		field := FieldFromTuning(t)
		p.Field = &field
	}
	p.SetStart(p.Position, p.Direction, p.Rotation)
	return p
}

// AsteroidConfigFromTuning resolves the asteroid tuning into images.
func AsteroidConfigFromTuning(t *prefabs.Tuning, res Resources) AsteroidConfig {
	a := t.Asteroids
	variants := make([]AsteroidVariant, 0, len(a.Variants))
	for _, v := range a.Variants {
		variants = append(variants, AsteroidVariant{Image: res.Image(v.Sprite), Scale: v.Scale})
	}
	return AsteroidConfig{
		Field:         FieldFromTuning(t),
		Interval:      a.SpawnInterval,
		SpawnX:        a.SpawnX,
		Margin:        a.SpawnMargin,
		Speed:         a.Speed,
		Rotation:      common.Radians(a.Rotation),
		RotationSpeed: a.RotationSpeed,
		Damage:        a.Damage,
		Variants:      variants,
	}
}

// CoinsConfigFromTuning resolves the coin tuning into an animation template.
func CoinsConfigFromTuning(t *prefabs.Tuning, res Resources) CoinsConfig {
	c := t.Coins
	sheet := res.Image(c.Animation.Sheet)
	return CoinsConfig{
		Field:     FieldFromTuning(t),
		Count:     c.Count,
		Scale:     c.Scale,
		Score:     c.Score,
		Animation: component.NewAnimation(sheet, c.Animation.FrameCount, c.Animation.FrameDuration),
	}
}
