package component

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripAnimation(t *testing.T, frames int, duration float64) *Animation {
	t.Helper()
	return NewAnimationFrames(nil, FrameStrip(image.Rect(0, 0, 32*frames, 32), frames), duration)
}

func TestFrameStrip(t *testing.T) {
	frames := FrameStrip(image.Rect(0, 0, 256, 32), 8)
	require.Len(t, frames, 8)
	assert.Equal(t, image.Rect(0, 0, 32, 32), frames[0])
	assert.Equal(t, image.Rect(224, 0, 256, 32), frames[7])
}

func TestFrameGrid(t *testing.T) {
	frames := FrameGrid(image.Rect(0, 0, 64, 64), 32, 32, 3)
	require.Len(t, frames, 3)
	assert.Equal(t, image.Rect(32, 0, 64, 32), frames[1])
	assert.Equal(t, image.Rect(0, 32, 32, 64), frames[2])

	assert.Panics(t, func() { FrameGrid(image.Rect(0, 0, 64, 64), 32, 32, 5) })
	assert.Panics(t, func() { FrameGrid(image.Rect(0, 0, 64, 64), 0, 32, 1) })
	assert.Panics(t, func() { FrameStrip(image.Rect(0, 0, 64, 64), 0) })
}

func TestNewAnimationFramesPreconditions(t *testing.T) {
	assert.Panics(t, func() { NewAnimationFrames(nil, nil, 0.1) })
	assert.Panics(t, func() { NewAnimationFrames(nil, []image.Rectangle{image.Rect(0, 0, 1, 1)}, 0) })
	assert.Panics(t, func() { NewAnimation(nil, 8, 0.1) })
}

func TestAnimationCycles(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		dt       float64
		calls    int
	}{
		// dt equal to one frame: one call per frame.
		{"exact_step", 0.125, 0.125, 8},
		// four calls per frame.
		{"fine_step", 0.125, 0.03125, 32},
		// dt larger than a frame still advances a single frame per call.
		{"coarse_step", 0.125, 0.5, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := stripAnimation(t, 8, c.duration)
			seen := map[int]bool{a.Current(): true}
			for i := 0; i < c.calls-1; i++ {
				a.Update(c.dt)
				seen[a.Current()] = true
			}
			assert.Len(t, seen, 8, "every frame should be shown")
			require.NotEqual(t, 0, a.Current())
			a.Update(c.dt)
			assert.Equal(t, 0, a.Current())
		})
	}
}

func TestAnimationCoarseStepAdvancesOneFrame(t *testing.T) {
	a := stripAnimation(t, 4, 0.1)
	for want := 1; want <= 3; want++ {
		a.Update(1.0)
		assert.Equal(t, want, a.Current())
	}
}

func TestAnimationKeepsRemainder(t *testing.T) {
	a := stripAnimation(t, 4, 0.5)
	a.Update(0.75)
	assert.Equal(t, 1, a.Current())
	// 0.25 carried over, so another 0.25 completes the next frame.
	a.Update(0.25)
	assert.Equal(t, 2, a.Current())
}

func TestAnimationZeroDelta(t *testing.T) {
	a := stripAnimation(t, 4, 0.5)
	for i := 0; i < 10; i++ {
		a.Update(0)
	}
	assert.Equal(t, 0, a.Current())
}

func TestAnimationResetAndSetFrame(t *testing.T) {
	a := stripAnimation(t, 4, 0.5)
	a.Update(0.5)
	a.Update(0.5)
	require.Equal(t, 2, a.Current())

	a.Reset()
	assert.Equal(t, 0, a.Current())

	a.SetFrame(10)
	assert.Equal(t, 3, a.Current())
	a.SetFrame(-1)
	assert.Equal(t, 0, a.Current())
}

func TestAnimationClone(t *testing.T) {
	a := stripAnimation(t, 4, 0.5)
	a.Update(0.5)

	b := a.Clone()
	assert.Equal(t, 0, b.Current())
	assert.Equal(t, a.Frames, b.Frames)

	b.Update(0.5)
	b.Update(0.5)
	assert.Equal(t, 1, a.Current())
	assert.Equal(t, 2, b.Current())

	w, h := b.Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)
}

func TestAnimationImageWithoutSheetPanics(t *testing.T) {
	a := stripAnimation(t, 2, 0.5)
	assert.Panics(t, func() { a.Image() })
}
