package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/takugotora12/app05game/component"
)

// AnimatedSprite is a Sprite whose image cycles through the frames of an
// Animation. The embedded Sprite's Image is the first frame, so collision
// radius follows the frame size rather than the whole sheet.
type AnimatedSprite struct {
	Sprite
	Animation *component.Animation
}

// NewAnimatedSprite creates an active sprite centred at (x, y) showing anim.
func NewAnimatedSprite(anim *component.Animation, x, y float64) *AnimatedSprite {
	if anim == nil || anim.Sheet == nil {
		panic("obj: animated sprite needs an animation with a sheet")
	}
	first := anim.Sheet.SubImage(anim.Frames[0]).(*ebiten.Image)
	return &AnimatedSprite{
		Sprite:    *NewSprite(first, x, y),
		Animation: anim,
	}
}

// Update performs the Sprite motion update and then advances the animation.
func (s *AnimatedSprite) Update(dt float64) {
	s.mustHaveAnimation()
	if !s.State.Updates() {
		return
	}
	s.Sprite.Update(dt)
	s.Animation.Update(dt)
}

// Animate advances only the animation, leaving position and rotation alone.
func (s *AnimatedSprite) Animate(dt float64) {
	s.mustHaveAnimation()
	if !s.State.Visible() {
		return
	}
	s.Animation.Update(dt)
}

// Draw blits the current frame when visible.
func (s *AnimatedSprite) Draw(screen *ebiten.Image) {
	if !s.State.Visible() {
		return
	}
	s.mustHaveAnimation()
	w, h := s.Animation.Size()
	s.Animation.Draw(screen, s.drawOptions(w, h))
}

func (s *AnimatedSprite) mustHaveAnimation() {
	if s.Animation == nil {
		panic("obj: animated sprite has no animation")
	}
}
