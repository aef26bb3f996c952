package system

import (
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/takugotora12/app05game/common"
	"github.com/takugotora12/app05game/component"
	"github.com/takugotora12/app05game/obj"
)

// CoinScore is the default score per coin.
const CoinScore = 10

type CoinsConfig struct {
	Field common.Field
	Count int
	Scale float64
	Score int
	// Animation is the template each coin clones its playback state from.
	Animation *component.Animation
}

// CoinsController owns a fixed set of stationary animated coins that add to
// the player's score when collected.
type CoinsController struct {
	cfg    CoinsConfig
	rng    *rand.Rand
	effect Effect

	coins []*obj.AnimatedSprite
}

// NewCoinsController creates an empty controller. A nil effect is silent.
func NewCoinsController(cfg CoinsConfig, rng *rand.Rand, effect Effect) *CoinsController {
	if rng == nil {
		panic("system: coins controller needs a random source")
	}
	if cfg.Animation == nil || cfg.Animation.Sheet == nil {
		panic("system: coins controller needs an animation with a sheet")
	}
	if cfg.Scale <= 0 {
		panic("system: coin scale must be positive")
	}
	return &CoinsController{
		cfg:    cfg,
		rng:    rng,
		effect: effectOrSilent(effect),
	}
}

// Setup creates the configured number of coins.
func (c *CoinsController) Setup() {
	for i := 0; i < c.cfg.Count; i++ {
		c.CreateCoin()
	}
}

// CreateCoin adds one coin at a random position lying wholly inside the
// field.
func (c *CoinsController) CreateCoin() *obj.AnimatedSprite {
	coin := obj.NewAnimatedSprite(c.cfg.Animation.Clone(), 0, 0)
	coin.Scale = c.cfg.Scale

	r := coin.Radius()
	w := c.cfg.Field.Width - 2*r
	h := c.cfg.Field.Height - 2*r
	if w <= 0 || h <= 0 {
		panic("system: coin does not fit inside the field")
	}
	coin.Position = cp.Vector{
		X: r + c.rng.Float64()*w,
		Y: r + c.rng.Float64()*h,
	}

	c.coins = append(c.coins, coin)
	return coin
}

// Update advances each coin's animation. Coins never move.
func (c *CoinsController) Update(dt float64) {
	mustBeFrameTime(dt)
	for _, coin := range c.coins {
		coin.Animate(dt)
	}
}

// HasCollided scores every live coin touching player and returns how many
// were collected.
func (c *CoinsController) HasCollided(player *obj.PlayerSprite) int {
	collected := 0
	for _, coin := range c.coins {
		if !coin.IsAlive() || !coin.HasCollided(player) {
			continue
		}
		c.effect.Play()
		coin.Destroy()
		player.Score += c.cfg.Score
		collected++
	}
	return collected
}

func (c *CoinsController) Draw(screen *ebiten.Image) {
	for _, coin := range c.coins {
		coin.Draw(screen)
	}
}

// Coins returns the owned collection. Callers must not modify it.
func (c *CoinsController) Coins() []*obj.AnimatedSprite { return c.coins }

// Remaining counts the coins not yet collected.
func (c *CoinsController) Remaining() int {
	n := 0
	for _, coin := range c.coins {
		if coin.IsAlive() {
			n++
		}
	}
	return n
}
