package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/takugotora12/app05game/common"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	white       = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// NewPauseUI builds the centered pause panel with Resume, Restart and Quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := overlayFace()
	panel := overlayPanel()

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
	panel.AddChild(overlayButton("Resume", face, func() { g.world.TogglePause() }))
	panel.AddChild(overlayButton("Restart", face, func() { g.world.Restart() }))
	panel.AddChild(overlayButton("Quit", face, func() { g.quit = true }))

	return overlayRoot(panel)
}

// NewGameOverUI builds the panel shown under the won/lost banner.
func NewGameOverUI(g *Game) *ebitenui.UI {
	face := overlayFace()
	panel := overlayPanel()

	panel.AddChild(overlayButton("Play Again", face, func() { g.world.Restart() }))
	panel.AddChild(overlayButton("Quit", face, func() { g.quit = true }))

	return overlayRoot(panel)
}

// overlayFace uses the built-in basic font so no theme fonts are needed.
func overlayFace() ebtext.Face {
	return ebtext.NewGoXFace(basicfont.Face7x13)
}

func overlayPanel() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
}

func overlayButton(label string, face ebtext.Face, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(buttonColor)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: img, Pressed: img}),
		widget.ButtonOpts.Text(label, &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func overlayRoot(panel *widget.Container) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
