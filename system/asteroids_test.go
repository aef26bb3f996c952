package system

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takugotora12/app05game/common"
	"github.com/takugotora12/app05game/component"
	"github.com/takugotora12/app05game/obj"
)

type countingEffect struct{ plays int }

func (e *countingEffect) Play() { e.plays++ }

func testRand() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func testAsteroidConfig() AsteroidConfig {
	rock := ebiten.NewImage(100, 100)
	return AsteroidConfig{
		Field:         common.DefaultField(),
		Interval:      MaxSpawnInterval,
		SpawnX:        1500,
		Margin:        50,
		Speed:         100,
		Rotation:      common.Radians(3),
		RotationSpeed: 2,
		Damage:        AsteroidDamage,
		Variants: []AsteroidVariant{
			{Image: rock, Scale: 0.1},
			{Image: rock, Scale: 0.05},
			{Image: rock, Scale: 0.2},
		},
	}
}

func testPlayer() *obj.PlayerSprite {
	return obj.NewPlayerSprite(ebiten.NewImage(20, 20), 200, 500)
}

func TestAsteroidSpawnAfterFullInterval(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)

	for i := 0; i < 9; i++ {
		c.Update(0.5)
	}
	assert.Equal(t, 0, c.Spawned())

	c.Update(0.5)
	assert.Equal(t, 1, c.Spawned())
	assert.Len(t, c.Asteroids(), 1)
	assert.InDelta(t, MaxSpawnInterval, c.Timer(), 1e-9)
}

func TestAsteroidSpawnCadenceIgnoresFrameSize(t *testing.T) {
	tests := []struct {
		name   string
		dt     float64
		frames int
	}{
		{"one big step", 12.5, 1},
		{"half seconds", 0.5, 25},
		{"quarter seconds", 0.25, 50},
		{"sixteenth seconds", 0.0625, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
			for i := 0; i < tt.frames; i++ {
				c.Update(tt.dt)
			}
			assert.Equal(t, 2, c.Spawned())
			assert.InDelta(t, 2.5, c.Timer(), 1e-9)
		})
	}
}

func TestAsteroidSetupSpawnsOne(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	c.Setup()

	require.Len(t, c.Asteroids(), 1)
	a := c.Asteroids()[0]
	assert.True(t, a.IsActive())
	assert.Equal(t, MaxSpawnInterval, c.Timer())
}

func TestAsteroidSpawnsInsideBand(t *testing.T) {
	cfg := testAsteroidConfig()
	c := NewAsteroidController(cfg, testRand(), nil)

	for i := 0; i < 200; i++ {
		c.Update(cfg.Interval)
	}
	require.Len(t, c.Asteroids(), 200)

	scales := map[float64]bool{}
	for _, a := range c.Asteroids() {
		assert.GreaterOrEqual(t, a.Position.Y, 50.0)
		assert.LessOrEqual(t, a.Position.Y, 750.0)
		assert.Equal(t, cp.Vector{X: -1, Y: 0}, a.Direction)
		assert.Equal(t, 100.0, a.Speed)
		assert.Equal(t, 2.0, a.RotationSpeed)
		scales[a.Scale] = true
	}
	assert.Len(t, scales, 3)
}

func TestAsteroidSpawnIsSeeded(t *testing.T) {
	a := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	b := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	for i := 0; i < 5; i++ {
		a.Update(5)
		b.Update(5)
	}
	for i := range a.Asteroids() {
		assert.Equal(t, a.Asteroids()[i].Position, b.Asteroids()[i].Position)
		assert.Equal(t, a.Asteroids()[i].Scale, b.Asteroids()[i].Scale)
	}
}

func TestAsteroidNotMovedOnSpawnFrame(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)

	c.Update(5)
	require.Len(t, c.Asteroids(), 1)
	a := c.Asteroids()[0]
	assert.Equal(t, 1500.0, a.Position.X)
	assert.InDelta(t, common.Radians(3), a.Rotation, 1e-12)
	assert.True(t, a.IsActive())

	c.Update(0.5)
	assert.InDelta(t, 1450, a.Position.X, 1e-9)
	assert.InDelta(t, common.Radians(3)+1, a.Rotation, 1e-9)
}

func TestAsteroidOffScreenIsReaped(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	c.Setup()
	a := c.Asteroids()[0]

	a.Position.X = -a.Radius() + 1
	c.Update(0)
	assert.True(t, a.IsAlive())

	a.Position.X = -a.Radius() - 1
	c.Update(0)
	assert.False(t, a.IsAlive())
	assert.Equal(t, 1, c.Tombstones())
}

func TestAsteroidHitDamagesOnce(t *testing.T) {
	fx := &countingEffect{}
	c := NewAsteroidController(testAsteroidConfig(), testRand(), fx)
	c.Setup()
	p := testPlayer()
	c.Asteroids()[0].Position = p.Position

	assert.Equal(t, 1, c.HasCollided(p))
	assert.Equal(t, 75, p.Health.Current)
	assert.Equal(t, 1, fx.plays)

	// tombstoned asteroids never hit again
	assert.Equal(t, 0, c.HasCollided(p))
	assert.Equal(t, 75, p.Health.Current)
	assert.Equal(t, 1, fx.plays)
	assert.Equal(t, 1, c.Tombstones())
}

func TestAsteroidFourHitsDeplete(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	p := testPlayer()

	for i := 0; i < 4; i++ {
		c.Update(5)
		last := c.Asteroids()[len(c.Asteroids())-1]
		last.Position = p.Position
		c.HasCollided(p)
	}
	assert.Equal(t, 0, p.Health.Current)
	assert.True(t, p.Health.Depleted())
	assert.Equal(t, 0, p.Score)
}

func TestAsteroidCompact(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	for i := 0; i < 4; i++ {
		c.Update(5)
	}
	p := testPlayer()
	c.Asteroids()[1].Position = p.Position
	c.Asteroids()[3].Position = p.Position
	require.Equal(t, 2, c.HasCollided(p))

	kept := []*obj.Sprite{c.Asteroids()[0], c.Asteroids()[2]}
	assert.Equal(t, 2, c.Compact())
	assert.Equal(t, kept, c.Asteroids())
	assert.Equal(t, 0, c.Tombstones())
	assert.Equal(t, 4, c.Spawned())
}

func TestAsteroidRejectsBadFrameTime(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	for _, dt := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		assert.Panics(t, func() { c.Update(dt) }, "dt %v", dt)
	}
	assert.NotPanics(t, func() { c.Update(0) })
}

func TestNewAsteroidControllerPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewAsteroidController(testAsteroidConfig(), nil, nil) })

	cfg := testAsteroidConfig()
	cfg.Variants = nil
	assert.Panics(t, func() { NewAsteroidController(cfg, testRand(), nil) })

	cfg = testAsteroidConfig()
	cfg.Margin = 400
	assert.Panics(t, func() { NewAsteroidController(cfg, testRand(), nil) })

	cfg = testAsteroidConfig()
	cfg.Interval = 0
	assert.Panics(t, func() { NewAsteroidController(cfg, testRand(), nil) })
}

func TestAsteroidSpawningStateBeforeActivation(t *testing.T) {
	c := NewAsteroidController(testAsteroidConfig(), testRand(), nil)
	a := c.spawn()
	assert.Equal(t, component.Spawning, a.State)
	assert.True(t, a.IsAlive())
	assert.False(t, a.IsActive())
}
