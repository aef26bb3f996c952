package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/takugotora12/app05game/common"
	"github.com/takugotora12/app05game/component"
)

// Collider is anything with a collision circle.
type Collider interface {
	Center() cp.Vector
	Radius() float64
}

// Sprite is a single-image entity moving at constant velocity and spinning at
// a constant rate. Position is the centre of the image.
type Sprite struct {
	Image *ebiten.Image

	Position  cp.Vector
	Direction cp.Vector
	Speed     float64

	Scale         float64
	Rotation      float64
	RotationSpeed float64

	State component.Lifecycle
}

// NewSprite creates an active, unscaled, stationary sprite centred at (x, y).
func NewSprite(img *ebiten.Image, x, y float64) *Sprite {
	if img == nil {
		panic("obj: sprite has no image")
	}
	return &Sprite{
		Image:    img,
		Position: cp.Vector{X: x, Y: y},
		Scale:    1,
	}
}

// Update moves and spins the sprite by dt seconds if it is active.
func (s *Sprite) Update(dt float64) {
	s.mustHaveImage()
	if !s.State.Updates() {
		return
	}
	s.Position = s.Position.Add(s.Direction.Mult(s.Speed * dt))
	if spin := s.RotationSpeed * dt; spin != 0 {
		s.Rotation = common.WrapAngle(s.Rotation + spin)
	}
}

// Draw blits the image centred at Position, rotated and scaled.
func (s *Sprite) Draw(screen *ebiten.Image) {
	if !s.State.Visible() {
		return
	}
	s.mustHaveImage()
	screen.DrawImage(s.Image, s.drawOptions(s.Image.Bounds().Dx(), s.Image.Bounds().Dy()))
}

// drawOptions centres a w x h image on Position before scaling and rotating.
func (s *Sprite) drawOptions(w, h int) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(s.Scale, s.Scale)
	op.GeoM.Rotate(s.Rotation)
	op.GeoM.Translate(s.Position.X, s.Position.Y)
	op.Filter = ebiten.FilterLinear
	return op
}

// Center returns the collision circle centre.
func (s *Sprite) Center() cp.Vector { return s.Position }

// Radius is half the shorter side of the image, scaled. Rotation does not
// change it.
func (s *Sprite) Radius() float64 {
	s.mustHaveImage()
	b := s.Image.Bounds()
	return s.Scale * float64(min(b.Dx(), b.Dy())) / 2
}

// Bounds is the axis-aligned box around the collision circle.
func (s *Sprite) Bounds() cp.BB {
	return cp.NewBBForCircle(s.Position, s.Radius())
}

// HasCollided reports whether the collision circles strictly overlap.
// Touching circles do not collide.
func (s *Sprite) HasCollided(other Collider) bool {
	return Overlaps(s, other)
}

// IsActive reports whether the sprite takes part in updates.
func (s *Sprite) IsActive() bool { return s.State.Updates() }

// IsVisible reports whether the sprite takes part in drawing.
func (s *Sprite) IsVisible() bool { return s.State.Visible() }

// IsAlive reports whether the sprite can still score or damage.
func (s *Sprite) IsAlive() bool { return s.State.Alive() }

// Activate promotes a spawning sprite to active.
func (s *Sprite) Activate() { s.State.Activate() }

// Destroy tombstones the sprite.
func (s *Sprite) Destroy() { s.State.Destroy() }

// Heading returns the unit vector for Rotation.
func (s *Sprite) Heading() cp.Vector { return cp.ForAngle(s.Rotation) }

func (s *Sprite) mustHaveImage() {
	if s.Image == nil {
		panic("obj: sprite has no image")
	}
}

// Overlaps is the circle test shared by every sprite kind. The squared
// distance is symmetric in a and b so the result is too.
func Overlaps(a, b Collider) bool {
	r := a.Radius() + b.Radius()
	if r <= 0 || math.IsNaN(r) {
		return false
	}
	return a.Center().Near(b.Center(), r)
}
