package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/takugotora12/app05game/common"
	"github.com/takugotora12/app05game/component"
)

// ControlMode selects how the player's heading is derived.
type ControlMode uint8

const (
	// Free moves along a Direction set from outside.
	Free ControlMode = iota
	// Rotational steers Rotation with turn commands; thrust moves along it.
	Rotational
)

func (m ControlMode) String() string {
	switch m {
	case Free:
		return "free"
	case Rotational:
		return "rotational"
	default:
		return "unknown"
	}
}

// DefaultTurnStep is the rotation applied per turn command per update, in
// radians (about 3 degrees).
const DefaultTurnStep = 0.05

// PlayerSprite is the ship. Health and Score are only changed by the
// controllers that resolve collisions against it.
type PlayerSprite struct {
	Sprite

	Health   component.Health
	Score    int
	Control  ControlMode
	TurnStep float64

	// Field, when set, keeps the ship inside the play area.
	Field *common.Field

	start          cp.Vector
	startDirection cp.Vector
	startRotation  float64
}

// NewPlayerSprite creates a ship centred at (x, y) with full health.
func NewPlayerSprite(img *ebiten.Image, x, y float64) *PlayerSprite {
	return &PlayerSprite{
		Sprite:   *NewSprite(img, x, y),
		Health:   component.NewHealth(100),
		TurnStep: DefaultTurnStep,
		start:    cp.Vector{X: x, Y: y},
	}
}

// Update applies one frame of input. In Rotational mode each turn command
// rotates by TurnStep and thrust moves the ship along its heading; without
// thrust the ship holds position. In Free mode the ship always moves along
// Direction. A zero-length frame changes nothing.
func (p *PlayerSprite) Update(dt float64, in InputState) {
	p.mustHaveImage()
	if dt <= 0 {
		return
	}

	switch p.Control {
	case Rotational:
		if in.TurnLeft {
			p.Rotation -= p.TurnStep
		}
		if in.TurnRight {
			p.Rotation += p.TurnStep
		}
		p.Rotation = common.WrapAngle(p.Rotation)
		if in.Thrust {
			p.Direction = p.Heading()
			p.Sprite.Update(dt)
		}
	default:
		p.Sprite.Update(dt)
	}

	if p.Field != nil {
		p.Position = p.Field.Clamp(p.Position, p.Radius())
	}
}

// SetStart records the pose that Reset returns to.
func (p *PlayerSprite) SetStart(pos, direction cp.Vector, rotation float64) {
	p.start = pos
	p.startDirection = direction
	p.startRotation = rotation
}

// Reset puts the ship back at its start pose with full health and no score.
func (p *PlayerSprite) Reset() {
	p.Position = p.start
	p.Direction = p.startDirection
	p.Rotation = p.startRotation
	p.Health.Reset()
	p.Score = 0
	p.State = component.Active
}
