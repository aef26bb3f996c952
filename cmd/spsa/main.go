package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/takugotora12/app05game/assets"
	"github.com/takugotora12/app05game/component"
	"golang.org/x/image/colornames"
)

const previewSize = 512

// previewGame plays one sprite sheet animation in the middle of the window.
type previewGame struct {
	anim  *component.Animation
	scale float64
}

func (g *previewGame) Update() error {
	g.anim.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	w, h := g.anim.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-float64(w)*g.scale)/2, (previewSize-float64(h)*g.scale)/2)
	g.anim.Draw(screen, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d/%d", g.anim.Current()+1, g.anim.FrameCount()))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	sheet := flag.String("sheet", "images/coin_copper.png", "sprite sheet to preview")
	frameW := flag.Int("w", 0, "frame width (0 splits the sheet into a single row)")
	frameH := flag.Int("h", 0, "frame height, used with -w")
	count := flag.Int("frames", 8, "number of frames")
	fps := flag.Float64("fps", 10, "frames per second")
	scale := flag.Float64("scale", 4, "draw scale")
	flag.Parse()

	if *count <= 0 || *fps <= 0 || *scale <= 0 {
		log.Fatal("spsa: -frames, -fps and -scale must be positive")
	}

	img := assets.LoadImageOr(*sheet, 16**count, 16, colornames.Sienna)
	var anim *component.Animation
	if *frameW > 0 && *frameH > 0 {
		anim = component.NewAnimationFrames(img, component.FrameGrid(img.Bounds(), *frameW, *frameH, *count), 1 / *fps)
	} else {
		anim = component.NewAnimation(img, *count, 1 / *fps)
	}

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(&previewGame{anim: anim, scale: *scale}); err != nil {
		log.Fatal(err)
	}
}
