// Package clip holds the state of the single user-controlled clipping plane.
package clip

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Step is the offset change applied per key press or repeat
const Step = 0.1

// Normal is the fixed plane normal; only the constant term moves
var Normal = mgl32.Vec3{0, 0, 1}

// Plane is the half-space 0*x + 0*y + 1*z + offset >= 0, active when enabled
type Plane struct {
	enabled bool
	offset  float32
}

// NewPlane creates a disabled plane with the given constant term
func NewPlane(offset float32) *Plane {
	return &Plane{offset: offset}
}

// Enabled reports whether clipping is active
func (p *Plane) Enabled() bool {
	return p.enabled
}

// Offset returns the plane's constant term
func (p *Plane) Offset() float32 {
	return p.offset
}

// Toggle flips clipping on or off and returns the new state. The offset is kept.
func (p *Plane) Toggle() bool {
	p.enabled = !p.enabled
	return p.enabled
}

// Nudge moves the constant term by steps*Step and returns the new offset
func (p *Plane) Nudge(steps int) float32 {
	p.offset += float32(steps) * Step
	return p.offset
}

// Equation returns the plane coefficients (a, b, c, d)
func (p *Plane) Equation() mgl32.Vec4 {
	return Normal.Vec4(p.offset)
}

// Keeps reports whether a world-space point survives clipping
func (p *Plane) Keeps(point mgl32.Vec3) bool {
	if !p.enabled {
		return true
	}
	return p.Equation().Dot(point.Vec4(1)) >= 0
}
