package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material describes how a surface responds to light. When ColorDriven is set
// the ambient and diffuse terms come from each object's colour.
type Material struct {
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
	Shininess   float32
	ColorDriven bool
}

// PointLight is a positional light. Position is given in eye space.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Lighting bundles everything the shading stage needs for one frame
type Lighting struct {
	GlobalAmbient mgl32.Vec3
	Light         PointLight
	Material      Material
}

// DefaultLighting is a single bright point light over a moderately shiny surface
func DefaultLighting() Lighting {
	return Lighting{
		GlobalAmbient: mgl32.Vec3{0.3, 0.3, 0.3},
		Light: PointLight{
			Position: mgl32.Vec3{10, 10, 10},
			Ambient:  mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:  mgl32.Vec3{0.7, 0.7, 0.7},
			Specular: mgl32.Vec3{0.5, 0.5, 0.5},
		},
		Material: Material{
			Specular:    mgl32.Vec3{0.8, 0.8, 0.8},
			Shininess:   32,
			ColorDriven: true,
		},
	}
}

// Resolve returns the ambient and diffuse terms to use for an object of colour c
func (m Material) Resolve(c mgl32.Vec3) (ambient, diffuse mgl32.Vec3) {
	if m.ColorDriven {
		return c, c
	}
	return m.Ambient, m.Diffuse
}
