package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/takugotora12/app05game/obj"
	"github.com/takugotora12/app05game/prefabs"
	"github.com/takugotora12/app05game/system"
)

type Game struct {
	frames int
	debug  bool
	quit   bool

	tuningName string
	watcher    *prefabs.Watcher

	input   *obj.Input
	world   *system.World
	hud     *HUD
	pauseUI *ebitenui.UI
	overUI  *ebitenui.UI
}

func NewGame(tuning *prefabs.Tuning, tuningName string, seed uint64, debug bool) (*Game, error) {
	hud, err := NewHUD()
	if err != nil {
		return nil, err
	}

	world := system.NewWorld(tuning, system.AssetResources{}, rand.New(rand.NewPCG(seed, seed>>1|1)))
	world.Debug = debug

	g := &Game{
		debug:      debug,
		tuningName: tuningName,
		input:      obj.NewInput(),
		world:      world,
		hud:        hud,
	}
	g.pauseUI = NewPauseUI(g)
	g.overUI = NewGameOverUI(g)

	w, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		log.Printf("prefabs: not watching for changes: %v", err)
	} else {
		g.watcher = w
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	in := g.input.State()
	if in.Exit || g.quit {
		return ebiten.Termination
	}

	g.reloadTuning()

	switch state := g.world.State(); {
	case state == system.Paused:
		g.pauseUI.Update()
	case state.Over():
		g.overUI.Update()
	}

	g.world.Update(1/float64(ebiten.TPS()), in)
	return nil
}

// reloadTuning drains the watcher and hands the latest valid tuning to the
// world, which picks it up on the next restart.
func (g *Game) reloadTuning() {
	if g.watcher != nil {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
		}
	}
	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if filepath.Base(name) != filepath.Base(g.tuningName) {
			continue
		}
		t, err := prefabs.LoadTuning(g.tuningName)
		if err != nil {
			log.Printf("prefabs: reload %s: %v", g.tuningName, err)
			continue
		}
		g.world.ApplyTuning(t)
		log.Printf("prefabs: %s reloaded, applied on restart", g.tuningName)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	g.hud.Draw(screen, g.world)

	switch state := g.world.State(); {
	case state == system.Paused:
		g.pauseUI.Draw(screen)
	case state.Over():
		g.overUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Asteroids: %d", g.frames, ebiten.ActualFPS(), len(g.world.Asteroids.Asteroids())), 0, 40)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	t := g.world.Tuning()
	return t.Field.Width, t.Field.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
