package system

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/takugotora12/app05game/common"
	"github.com/takugotora12/app05game/component"
	"github.com/takugotora12/app05game/obj"
)

const (
	// MaxSpawnInterval is the default number of seconds between asteroids.
	MaxSpawnInterval = 5.0
	// AsteroidDamage is the default health lost per asteroid hit.
	AsteroidDamage = 25
)

// AsteroidVariant is one of the looks a new asteroid can take.
type AsteroidVariant struct {
	Image *ebiten.Image
	Scale float64
}

type AsteroidConfig struct {
	Field common.Field
	// Interval is the number of seconds between spawns.
	Interval float64
	// SpawnX is the fixed off-screen x of new asteroids.
	SpawnX float64
	// Margin keeps spawn y inside [Margin, Field.Height-Margin].
	Margin        float64
	Speed         float64
	Rotation      float64
	RotationSpeed float64
	Damage        int
	Variants      []AsteroidVariant
}

// AsteroidController spawns asteroids from the right edge on a timer and
// damages the player when one hits. Its collection only grows; removed
// asteroids stay as tombstones until Compact is called.
type AsteroidController struct {
	cfg    AsteroidConfig
	rng    *rand.Rand
	effect Effect

	timer      float64
	asteroids  []*obj.Sprite
	tombstones int
	spawned    int
}

// NewAsteroidController creates a controller with a full spawn timer. A nil
// effect is silent.
func NewAsteroidController(cfg AsteroidConfig, rng *rand.Rand, effect Effect) *AsteroidController {
	if rng == nil {
		panic("system: asteroid controller needs a random source")
	}
	if len(cfg.Variants) == 0 {
		panic("system: asteroid controller needs at least one variant")
	}
	for _, v := range cfg.Variants {
		if v.Image == nil || v.Scale <= 0 {
			panic("system: asteroid variant needs an image and a positive scale")
		}
	}
	if cfg.Interval <= 0 {
		panic("system: asteroid spawn interval must be positive")
	}
	if cfg.Margin < 0 || 2*cfg.Margin >= cfg.Field.Height {
		panic("system: asteroid spawn band lies outside the field")
	}
	return &AsteroidController{
		cfg:    cfg,
		rng:    rng,
		effect: effectOrSilent(effect),
		timer:  cfg.Interval,
	}
}

// Setup spawns the first asteroid straight away.
func (c *AsteroidController) Setup() {
	c.spawn().Activate()
}

// Update counts down the spawn timer, spawning one asteroid each time a full
// interval has elapsed, then moves every asteroid that existed before this
// call. Asteroids spawned here start moving next frame.
func (c *AsteroidController) Update(dt float64) {
	mustBeFrameTime(dt)
	n := len(c.asteroids)

	c.timer -= dt
	for c.timer <= 0 {
		c.spawn()
		c.timer += c.cfg.Interval
	}

	for _, a := range c.asteroids[:n] {
		a.Update(dt)
		// Past the left edge it can never come back.
		if a.IsAlive() && a.Bounds().R < 0 {
			c.destroy(a)
		}
	}
	for _, a := range c.asteroids[n:] {
		a.Activate()
	}
}

// HasCollided damages player once for every live asteroid touching it and
// returns the number of hits.
func (c *AsteroidController) HasCollided(player *obj.PlayerSprite) int {
	hits := 0
	for _, a := range c.asteroids {
		if !a.IsAlive() || !a.HasCollided(player) {
			continue
		}
		c.effect.Play()
		c.destroy(a)
		player.Health.Damage(c.cfg.Damage)
		hits++
	}
	return hits
}

func (c *AsteroidController) Draw(screen *ebiten.Image) {
	for _, a := range c.asteroids {
		a.Draw(screen)
	}
}

// Compact drops tombstoned asteroids and returns how many were removed. It
// must not run during an update, collision or draw pass.
func (c *AsteroidController) Compact() int {
	kept := c.asteroids[:0]
	for _, a := range c.asteroids {
		if a.IsAlive() {
			kept = append(kept, a)
		}
	}
	removed := len(c.asteroids) - len(kept)
	clear(c.asteroids[len(kept):])
	c.asteroids = kept
	c.tombstones = 0
	return removed
}

// Asteroids returns the owned collection. Callers must not modify it.
func (c *AsteroidController) Asteroids() []*obj.Sprite { return c.asteroids }

// Tombstones is the number of destroyed asteroids still held.
func (c *AsteroidController) Tombstones() int { return c.tombstones }

// Spawned is the number of asteroids created since construction.
func (c *AsteroidController) Spawned() int { return c.spawned }

// Timer is the time left until the next spawn.
func (c *AsteroidController) Timer() float64 { return c.timer }

func (c *AsteroidController) spawn() *obj.Sprite {
	v := c.cfg.Variants[c.rng.IntN(len(c.cfg.Variants))]
	y := c.cfg.Margin + c.rng.Float64()*(c.cfg.Field.Height-2*c.cfg.Margin)

	a := obj.NewSprite(v.Image, c.cfg.SpawnX, y)
	a.Direction = cp.Vector{X: -1, Y: 0}
	a.Speed = c.cfg.Speed
	a.Scale = v.Scale
	a.Rotation = c.cfg.Rotation
	a.RotationSpeed = c.cfg.RotationSpeed
	a.State = component.Spawning

	c.asteroids = append(c.asteroids, a)
	c.spawned++
	return a
}

func (c *AsteroidController) destroy(a *obj.Sprite) {
	a.Destroy()
	c.tombstones++
}

func mustBeFrameTime(dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		panic(fmt.Sprintf("system: invalid frame time %v", dt))
	}
}
