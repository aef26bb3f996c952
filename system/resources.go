package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/takugotora12/app05game/assets"
	"github.com/takugotora12/app05game/prefabs"
	"golang.org/x/image/colornames"
)

// Resources loads the images and sound effects a World is built from.
type Resources interface {
	Image(spec prefabs.SpriteSpec) *ebiten.Image
	Effect(spec prefabs.AudioSpec) Effect
}

// AssetResources loads from the assets package, using placeholders and
// silent effects for files that are not there.
type AssetResources struct{}

func (AssetResources) Image(spec prefabs.SpriteSpec) *ebiten.Image {
	return assets.LoadImageOr(spec.Image, spec.Width, spec.Height, spec.Color.ColorOr(placeholderColor))
}

func (AssetResources) Effect(spec prefabs.AudioSpec) Effect {
	return assets.LoadEffectOr(spec.File, spec.Volume)
}

var placeholderColor color.Color = colornames.Magenta
