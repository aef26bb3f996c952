package common

import "github.com/jakecoffman/cp"

const (
	BaseWidth  = 1400
	BaseHeight = 800
)

// Field is the rectangular play area, origin at the top-left corner.
type Field struct {
	Width  float64
	Height float64
}

// DefaultField returns the 1400x800 playing area the game is laid out for.
func DefaultField() Field {
	return Field{Width: BaseWidth, Height: BaseHeight}
}

// BB returns the field as a bounding box.
func (f Field) BB() cp.BB {
	return cp.BB{L: 0, B: 0, R: f.Width, T: f.Height}
}

// Contains reports whether p lies inside the field, edges included.
func (f Field) Contains(p cp.Vector) bool {
	return p.X >= 0 && p.X <= f.Width && p.Y >= 0 && p.Y <= f.Height
}

// ContainsBB reports whether bb lies entirely inside the field.
func (f Field) ContainsBB(bb cp.BB) bool {
	return bb.L >= 0 && bb.R <= f.Width && bb.B >= 0 && bb.T <= f.Height
}

// Clamp keeps p at least margin away from every edge.
func (f Field) Clamp(p cp.Vector, margin float64) cp.Vector {
	return cp.Vector{
		X: Clamp(p.X, margin, f.Width-margin),
		Y: Clamp(p.Y, margin, f.Height-margin),
	}
}
