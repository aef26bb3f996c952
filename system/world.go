package system

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/takugotora12/app05game/obj"
	"github.com/takugotora12/app05game/prefabs"
)

// State is the phase of a round.
type State uint8

const (
	Starting State = iota
	Playing
	Paused
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Over reports whether the round has finished.
func (s State) Over() bool { return s == Won || s == Lost }

// World runs one round: a player, the asteroid and coin controllers and the
// win/lose evaluation between them.
type World struct {
	Player    *obj.PlayerSprite
	Asteroids *AsteroidController
	Coins     *CoinsController

	// Debug draws collision circles over every entity.
	Debug bool
	// OnStateChange is called after every transition.
	OnStateChange func(from, to State)

	tuning     *prefabs.Tuning
	pending    *prefabs.Tuning
	res        Resources
	rng        *rand.Rand
	background *ebiten.Image

	state  State
	frames int
}

// NewWorld builds a round from t. The world stays in Starting until the
// first Update.
func NewWorld(t *prefabs.Tuning, res Resources, rng *rand.Rand) *World {
	if t == nil {
		panic("system: world needs tuning")
	}
	if rng == nil {
		panic("system: world needs a random source")
	}
	if res == nil {
		res = AssetResources{}
	}
	w := &World{
		tuning: t,
		res:    res,
		rng:    rng,
	}
	w.build()
	return w
}

func (w *World) build() {
	t := w.tuning
	w.background = w.res.Image(t.Background)
	w.Player = BuildPlayer(t, w.res)
	w.Asteroids = NewAsteroidController(AsteroidConfigFromTuning(t, w.res), w.rng, w.res.Effect(t.Asteroids.Audio))
	w.Coins = NewCoinsController(CoinsConfigFromTuning(t, w.res), w.rng, w.res.Effect(t.Coins.Audio))
	w.Asteroids.Setup()
	w.Coins.Setup()
	w.frames = 0
	w.state = Starting
}

func (w *World) State() State { return w.state }

// Frames is the number of Playing frames stepped this round.
func (w *World) Frames() int { return w.frames }

func (w *World) Tuning() *prefabs.Tuning { return w.tuning }

// ApplyTuning stores t for the next Restart. The running round is untouched.
func (w *World) ApplyTuning(t *prefabs.Tuning) {
	if t != nil {
		w.pending = t
	}
}

// Restart rebuilds the round, picking up tuning handed to ApplyTuning. The
// random source carries on from where the previous round left it.
func (w *World) Restart() {
	if w.pending != nil {
		w.tuning = w.pending
		w.pending = nil
	}
	from := w.state
	w.build()
	if from != Starting {
		w.notify(from, Starting)
	}
}

// Update steps the round by dt seconds.
func (w *World) Update(dt float64, in obj.InputState) {
	mustBeFrameTime(dt)

	switch w.state {
	case Starting:
		w.setState(Playing)
	case Paused:
		if in.Pause {
			w.setState(Playing)
		}
		return
	case Won, Lost:
		if in.Restart {
			w.Restart()
		}
		return
	}

	if in.Pause {
		w.setState(Paused)
		return
	}
	w.step(dt, in)
}

// TogglePause flips between Playing and Paused and is a no-op otherwise.
func (w *World) TogglePause() {
	switch w.state {
	case Playing:
		w.setState(Paused)
	case Paused:
		w.setState(Playing)
	}
}

func (w *World) step(dt float64, in obj.InputState) {
	w.frames++

	w.Player.Update(dt, in)
	w.Asteroids.Update(dt)
	w.Coins.Update(dt)

	w.Asteroids.HasCollided(w.Player)
	w.Coins.HasCollided(w.Player)

	if n := w.tuning.Asteroids.CompactThreshold; n > 0 && w.Asteroids.Tombstones() >= n {
		w.Asteroids.Compact()
	}

	w.evaluate()
}

func (w *World) evaluate() {
	switch {
	case w.Player.Health.Depleted():
		w.setState(Lost)
	case w.Player.Score >= w.tuning.WinScore:
		w.setState(Won)
	}
}

func (w *World) setState(s State) {
	if s == w.state {
		return
	}
	from := w.state
	w.state = s
	w.notify(from, s)
}

func (w *World) notify(from, to State) {
	if w.Debug {
		log.Printf("world: %s -> %s", from, to)
	}
	if w.OnStateChange != nil {
		w.OnStateChange(from, to)
	}
}

// Draw renders the background, then the player, asteroids and coins.
func (w *World) Draw(screen *ebiten.Image) {
	if w.background != nil {
		op := &ebiten.DrawImageOptions{}
		b := w.background.Bounds()
		op.GeoM.Scale(w.tuning.Field.Width/float64(b.Dx()), w.tuning.Field.Height/float64(b.Dy()))
		screen.DrawImage(w.background, op)
	}

	w.Player.Draw(screen)
	w.Asteroids.Draw(screen)
	w.Coins.Draw(screen)

	if !w.Debug {
		return
	}
	drawCollider(screen, w.Player, color.RGBA{0, 255, 0, 255})
	for _, a := range w.Asteroids.Asteroids() {
		if a.IsAlive() {
			drawCollider(screen, a, color.RGBA{255, 64, 64, 255})
		}
	}
	for _, c := range w.Coins.Coins() {
		if c.IsAlive() {
			drawCollider(screen, c, color.RGBA{255, 215, 0, 255})
		}
	}
}

func drawCollider(screen *ebiten.Image, c obj.Collider, clr color.Color) {
	p := c.Center()
	vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(c.Radius()), 1, clr, true)
}
