package main

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/takugotora12/app05game/prefabs"
	"github.com/takugotora12/app05game/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	lostMessage = "You Lost !!! Game Over"
	wonMessage  = "You Won the Game !!!"
	exitMessage = "Press the ESC Key to EXIT"
)

// HUD draws the score, health, title and footer over the world.
type HUD struct {
	small text.Face
	large text.Face
}

func NewHUD() (*HUD, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUD{
		small: &text.GoTextFace{Source: s, Size: 20},
		large: &text.GoTextFace{Source: s, Size: 48},
	}, nil
}

func scoreText(score int) string { return fmt.Sprintf("Score = %d", score) }
func healthText(percent int) string { return fmt.Sprintf("Health = %d%%", percent) }

// outcomeText is the banner for a finished round, empty while it runs.
func outcomeText(s system.State) string {
	switch s {
	case system.Won:
		return wonMessage
	case system.Lost:
		return lostMessage
	}
	return ""
}

func footerText(f prefabs.FooterSpec) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.Names, f.Module, f.App} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "    ")
}

func (h *HUD) Draw(screen *ebiten.Image, w *system.World) {
	t := w.Tuning()
	width, height := t.Field.Width, t.Field.Height

	h.draw(screen, scoreText(w.Player.Score), h.small, 20, 12, text.AlignStart, colornames.White)
	h.draw(screen, t.Name, h.small, width/2, 12, text.AlignCenter, colornames.Gold)
	h.draw(screen, healthText(w.Player.Health.Percent()), h.small, width-20, 12, text.AlignEnd, healthColor(w.Player.Health.Percent()))
	h.draw(screen, footerText(t.Footer), h.small, width/2, height-36, text.AlignCenter, colornames.Lightgrey)

	if msg := outcomeText(w.State()); msg != "" {
		h.draw(screen, msg, h.large, width/2, height/2-220, text.AlignCenter, colornames.Yellow)
		h.draw(screen, exitMessage, h.small, width/2, height/2-150, text.AlignCenter, colornames.White)
	}
}

func (h *HUD) draw(screen *ebiten.Image, s string, face text.Face, x, y float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(screen, s, face, op)
}

func healthColor(percent int) color.Color {
	switch {
	case percent <= 25:
		return colornames.Red
	case percent <= 50:
		return colornames.Orange
	default:
		return colornames.Lightgreen
	}
}
