package component

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Animation is a looping frame animator over a single spritesheet. Frames are
// regions of Sheet shown for FrameDuration seconds each. It never finishes:
// after the last frame it wraps to frame 0.
type Animation struct {
	Sheet         *ebiten.Image
	Frames        []image.Rectangle
	FrameDuration float64

	current int
	timer   float64
}

// FrameStrip splits bounds into count equal frames laid out left-to-right.
func FrameStrip(bounds image.Rectangle, count int) []image.Rectangle {
	if count <= 0 {
		panic(fmt.Sprintf("component: frame count must be positive, got %d", count))
	}
	frameW := bounds.Dx() / count
	return FrameGrid(bounds, frameW, bounds.Dy(), count)
}

// FrameGrid reads count frames of frameW x frameH from bounds, left-to-right
// then top-to-bottom.
func FrameGrid(bounds image.Rectangle, frameW, frameH, count int) []image.Rectangle {
	if frameW <= 0 || frameH <= 0 {
		panic(fmt.Sprintf("component: degenerate frame size %dx%d", frameW, frameH))
	}
	cols := bounds.Dx() / frameW
	rows := bounds.Dy() / frameH
	if count <= 0 || count > cols*rows {
		panic(fmt.Sprintf("component: %d frames of %dx%d do not fit %v", count, frameW, frameH, bounds))
	}
	frames := make([]image.Rectangle, count)
	for i := range frames {
		sx := bounds.Min.X + (i%cols)*frameW
		sy := bounds.Min.Y + (i/cols)*frameH
		frames[i] = image.Rect(sx, sy, sx+frameW, sy+frameH)
	}
	return frames
}

// NewAnimation slices sheet into a horizontal strip of frameCount frames.
func NewAnimation(sheet *ebiten.Image, frameCount int, frameDuration float64) *Animation {
	if sheet == nil {
		panic("component: animation needs a sheet")
	}
	return NewAnimationFrames(sheet, FrameStrip(sheet.Bounds(), frameCount), frameDuration)
}

// NewAnimationFrames builds an animation from explicit frame regions. sheet
// may be nil when the animation only drives state, but Draw then panics.
func NewAnimationFrames(sheet *ebiten.Image, frames []image.Rectangle, frameDuration float64) *Animation {
	if len(frames) == 0 {
		panic("component: animation needs at least one frame")
	}
	if frameDuration <= 0 {
		panic(fmt.Sprintf("component: frame duration must be positive, got %v", frameDuration))
	}
	return &Animation{
		Sheet:         sheet,
		Frames:        frames,
		FrameDuration: frameDuration,
	}
}

// Clone returns an animation sharing sheet and frames but with its own
// playback state, starting at frame 0.
func (a *Animation) Clone() *Animation {
	if a == nil {
		return nil
	}
	return &Animation{
		Sheet:         a.Sheet,
		Frames:        a.Frames,
		FrameDuration: a.FrameDuration,
	}
}

// Update accumulates dt and advances at most one frame per call. The timer
// keeps the remainder so no time is lost between frames.
func (a *Animation) Update(dt float64) {
	a.timer += dt
	if a.timer >= a.FrameDuration {
		a.timer -= a.FrameDuration
		a.current = (a.current + 1) % len(a.Frames)
	}
}

// Reset rewinds to frame 0.
func (a *Animation) Reset() {
	a.current = 0
	a.timer = 0
}

// SetFrame jumps to frame i, clamped to the valid range.
func (a *Animation) SetFrame(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	a.current = i
	a.timer = 0
}

// Current returns the index of the frame being shown.
func (a *Animation) Current() int { return a.current }

// FrameCount returns the number of frames in the cycle.
func (a *Animation) FrameCount() int { return len(a.Frames) }

// Frame returns the sheet region of the current frame.
func (a *Animation) Frame() image.Rectangle { return a.Frames[a.current] }

// Size returns the frame width/height.
func (a *Animation) Size() (int, int) {
	r := a.Frames[0]
	return r.Dx(), r.Dy()
}

// Image returns the current frame as a sub-image of the sheet.
func (a *Animation) Image() *ebiten.Image {
	if a.Sheet == nil {
		panic("component: animation has no sheet to draw from")
	}
	return a.Sheet.SubImage(a.Frame()).(*ebiten.Image)
}

// Draw draws the current frame with op. If op is nil a zero
// DrawImageOptions is used.
func (a *Animation) Draw(screen *ebiten.Image, op *ebiten.DrawImageOptions) {
	var dop ebiten.DrawImageOptions
	if op != nil {
		dop = *op
	}
	dop.Filter = ebiten.FilterNearest
	screen.DrawImage(a.Image(), &dop)
}
