// Package scene describes the classroom as an ordered list of coloured boxes.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places a unit cube: scale first, then translate. There is no rotation.
type Transform struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
}

// Matrix returns the object-to-world matrix T * S
func (t Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translate.Mul4(scale)
}

// Apply transforms a point in cube space into world space
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		p[0]*t.Scale[0] + t.Translation[0],
		p[1]*t.Scale[1] + t.Translation[1],
		p[2]*t.Scale[2] + t.Translation[2],
	}
}

// Top returns the height of the upper face of a unit cube under this transform
func (t Transform) Top() float32 {
	return t.Translation.Y() + t.Scale.Y()/2
}

// MatrixStack composes transforms explicitly. It is a value type: Push and Pop
// return the new stack and leave the receiver's top untouched.
type MatrixStack []mgl32.Mat4

// NewMatrixStack returns a stack holding only base
func NewMatrixStack(base mgl32.Mat4) MatrixStack {
	return MatrixStack{base}
}

// Top returns the current composed matrix, identity for an empty stack
func (s MatrixStack) Top() mgl32.Mat4 {
	if len(s) == 0 {
		return mgl32.Ident4()
	}
	return s[len(s)-1]
}

// Push multiplies m onto the current top
func (s MatrixStack) Push(m mgl32.Mat4) MatrixStack {
	next := make(MatrixStack, len(s), len(s)+1)
	copy(next, s)
	return append(next, s.Top().Mul4(m))
}

// Pop drops the top matrix. Popping an empty stack is a no-op.
func (s MatrixStack) Pop() MatrixStack {
	if len(s) == 0 {
		return s
	}
	return s[:len(s)-1]
}

// Depth returns the number of matrices on the stack
func (s MatrixStack) Depth() int {
	return len(s)
}
