package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile is the default tuning prefab.
const TuningFile = "game.yaml"

// ErrInvalidTuning is wrapped by every validation failure.
var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// LoadTuning loads, defaults and validates a tuning file.
func LoadTuning(filename string) (*Tuning, error) {
	if filename == "" {
		filename = TuningFile
	}
	t, err := LoadSpec[Tuning](filename)
	if err != nil {
		return nil, err
	}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &t, nil
}

// ParseTuning decodes, defaults and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// DefaultTuning returns the built-in values with no file involved.
func DefaultTuning() *Tuning {
	var t Tuning
	t.applyDefaults()
	return &t
}

func (t *Tuning) applyDefaults() {
	if t.Name == "" {
		t.Name = "Space Asteroids"
	}
	if t.Field.Width == 0 {
		t.Field.Width = 1400
	}
	if t.Field.Height == 0 {
		t.Field.Height = 800
	}
	if t.WinScore == 0 {
		t.WinScore = 50
	}
	defaultSprite(&t.Background, int(t.Field.Width), int(t.Field.Height))

	s := &t.Ship
	defaultSprite(&s.Sprite, 60, 40)
	if s.X == 0 && s.Y == 0 {
		s.X, s.Y = 200, 500
	}
	if s.DirectionX == 0 && s.DirectionY == 0 {
		s.DirectionX = 1
	}
	if s.Speed == 0 {
		s.Speed = 200
	}
	if s.Scale == 0 {
		s.Scale = 1
	}
	if s.Health == 0 {
		s.Health = 100
	}
	if s.Control == "" {
		s.Control = "rotational"
	}
	if s.TurnStep == 0 {
		s.TurnStep = 0.05
	}
	if s.KeepInside == nil {
		keep := true
		s.KeepInside = &keep
	}

	a := &t.Asteroids
	if a.SpawnInterval == 0 {
		a.SpawnInterval = 5
	}
	if a.SpawnX == 0 {
		a.SpawnX = t.Field.Width + 100
	}
	if a.SpawnMargin == 0 {
		a.SpawnMargin = 50
	}
	if a.Speed == 0 {
		a.Speed = 100
	}
	if a.Rotation == 0 {
		a.Rotation = 3
	}
	if a.RotationSpeed == 0 {
		a.RotationSpeed = 2
	}
	if a.Damage == 0 {
		a.Damage = 25
	}
	if len(a.Variants) == 0 {
		a.Variants = []AsteroidVariantSpec{
			{Sprite: SpriteSpec{Image: "images/asteroid-1.png"}, Scale: 0.1},
			{Sprite: SpriteSpec{Image: "images/asteroid-2.png"}, Scale: 0.05},
			{Sprite: SpriteSpec{Image: "images/asteroid-3.png"}, Scale: 0.2},
		}
	}
	for i := range a.Variants {
		defaultSprite(&a.Variants[i].Sprite, 600, 600)
	}

	c := &t.Coins
	if c.Count == 0 {
		c.Count = 5
	}
	if c.Scale == 0 {
		c.Scale = 2
	}
	if c.Score == 0 {
		c.Score = 10
	}
	if c.Animation.FrameCount == 0 {
		c.Animation.FrameCount = 8
	}
	if c.Animation.FrameDuration == 0 {
		c.Animation.FrameDuration = 0.1
	}
	defaultSprite(&c.Animation.Sheet, 16*c.Animation.FrameCount, 16)
}

func defaultSprite(s *SpriteSpec, w, h int) {
	if s.Width == 0 {
		s.Width = w
	}
	if s.Height == 0 {
		s.Height = h
	}
}

// Validate rejects tuning that would produce entities outside the field or
// degenerate (zero-scale, zero-duration) ones.
func (t *Tuning) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...))
	}

	if t.Field.Width <= 0 || t.Field.Height <= 0 {
		return invalid("field %vx%v", t.Field.Width, t.Field.Height)
	}
	if t.WinScore < 0 {
		return invalid("win_score %d", t.WinScore)
	}

	s := t.Ship
	if s.Scale <= 0 {
		return invalid("ship scale %v", s.Scale)
	}
	if s.Speed < 0 {
		return invalid("ship speed %v", s.Speed)
	}
	if s.Health <= 0 {
		return invalid("ship health %d", s.Health)
	}
	if s.Control != "free" && s.Control != "rotational" {
		return invalid("ship control %q", s.Control)
	}
	if s.X < 0 || s.X > t.Field.Width || s.Y < 0 || s.Y > t.Field.Height {
		return invalid("ship start (%v, %v) outside field", s.X, s.Y)
	}
	if err := validSprite("ship", s.Sprite); err != nil {
		return invalid("%v", err)
	}

	a := t.Asteroids
	if a.SpawnInterval <= 0 {
		return invalid("asteroid spawn_interval %v", a.SpawnInterval)
	}
	if a.SpawnMargin < 0 || 2*a.SpawnMargin >= t.Field.Height {
		return invalid("asteroid spawn_margin %v for field height %v", a.SpawnMargin, t.Field.Height)
	}
	if a.SpawnX <= 0 {
		return invalid("asteroid spawn_x %v", a.SpawnX)
	}
	if a.Speed < 0 {
		return invalid("asteroid speed %v", a.Speed)
	}
	if a.Damage <= 0 {
		return invalid("asteroid damage %d", a.Damage)
	}
	if a.CompactThreshold < 0 {
		return invalid("asteroid compact_threshold %d", a.CompactThreshold)
	}
	for i, v := range a.Variants {
		if v.Scale <= 0 {
			return invalid("asteroid variant %d scale %v", i, v.Scale)
		}
		if err := validSprite(fmt.Sprintf("asteroid variant %d", i), v.Sprite); err != nil {
			return invalid("%v", err)
		}
	}

	c := t.Coins
	if c.Count < 0 {
		return invalid("coin count %d", c.Count)
	}
	if c.Scale <= 0 {
		return invalid("coin scale %v", c.Scale)
	}
	if c.Score <= 0 {
		return invalid("coin score %d", c.Score)
	}
	if c.Animation.FrameCount <= 0 || c.Animation.FrameDuration <= 0 {
		return invalid("coin animation %d frames of %vs", c.Animation.FrameCount, c.Animation.FrameDuration)
	}
	if err := validSprite("coin sheet", c.Animation.Sheet); err != nil {
		return invalid("%v", err)
	}
	frameW := float64(c.Animation.Sheet.Width/c.Animation.FrameCount) * c.Scale
	frameH := float64(c.Animation.Sheet.Height) * c.Scale
	if frameW <= 0 || frameW >= t.Field.Width || frameH >= t.Field.Height {
		return invalid("coin frame %vx%v does not fit the field", frameW, frameH)
	}

	return nil
}

func validSprite(what string, s SpriteSpec) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%s placeholder %dx%d", what, s.Width, s.Height)
	}
	return nil
}
