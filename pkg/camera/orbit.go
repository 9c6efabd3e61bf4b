// Package camera implements a spherical orbit camera looking at the origin.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit constraints
const (
	MinPitch = -89.0
	MaxPitch = 89.0

	MinDistance = 1.0
	MaxDistance = 50.0
)

// Projection defaults
const (
	DefaultFOV = 45.0
	NearPlane  = 0.1
	FarPlane   = 100.0
)

var (
	// Target is the fixed look-at point
	Target = mgl32.Vec3{0, 0, 0}
	// WorldUp is the fixed up direction
	WorldUp = mgl32.Vec3{0, 1, 0}
)

// Orbit holds the camera's spherical coordinates. Angles are in degrees.
type Orbit struct {
	yaw      float32
	pitch    float32
	distance float32
}

// NewOrbit creates an orbit camera, clamping pitch and distance into range
func NewOrbit(yaw, pitch, distance float32) *Orbit {
	return &Orbit{
		yaw:      yaw,
		pitch:    ClampPitch(pitch),
		distance: ClampDistance(distance),
	}
}

// ClampPitch keeps pitch within [MinPitch, MaxPitch]
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

// ClampDistance keeps distance within [MinDistance, MaxDistance]
func ClampDistance(distance float32) float32 {
	return mgl32.Clamp(distance, MinDistance, MaxDistance)
}

// Yaw returns the horizontal angle in degrees
func (o *Orbit) Yaw() float32 {
	return o.yaw
}

// Pitch returns the vertical angle in degrees
func (o *Orbit) Pitch() float32 {
	return o.pitch
}

// Distance returns the distance from the target
func (o *Orbit) Distance() float32 {
	return o.distance
}

// Rotate adds yaw and pitch offsets in degrees. Pitch stays clamped.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.yaw += dYaw
	o.pitch = ClampPitch(o.pitch + dPitch)
}

// Zoom moves the camera by delta along its line of sight; positive delta moves away
func (o *Orbit) Zoom(delta float32) {
	o.distance = ClampDistance(o.distance + delta)
}

// Eye returns the current eye position
func (o *Orbit) Eye() mgl32.Vec3 {
	return ComputeEye(o.yaw, o.pitch, o.distance)
}

// ViewMatrix returns the look-at matrix for the current eye position
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	return ViewMatrix(o.Eye(), Target, WorldUp)
}

// ComputeEye converts spherical coordinates (degrees) into an eye position:
// distance * (-sin(yaw)cos(pitch), sin(pitch), cos(yaw)cos(pitch)).
func ComputeEye(yaw, pitch, distance float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	d := float64(distance)

	return mgl32.Vec3{
		float32(d * -math.Sin(y) * math.Cos(p)),
		float32(d * math.Sin(p)),
		float32(d * math.Cos(y) * math.Cos(p)),
	}
}

// ViewMatrix builds a right-handed look-at matrix. The basis is
// right = normalize(forward x up) and the re-orthonormalized up = right x forward.
func ViewMatrix(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// Perspective builds the projection for a framebuffer. A zero width or height is treated as one.
func Perspective(fovDeg float32, width, height int) mgl32.Mat4 {
	width = max(width, 1)
	height = max(height, 1)
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, NearPlane, FarPlane)
}
