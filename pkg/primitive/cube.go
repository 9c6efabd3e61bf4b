// Package primitive generates the shared geometry every scene object is drawn with.
package primitive

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Layout of an interleaved vertex: position (3) followed by normal (3).
const (
	FloatsPerVertex = 6
	VerticesPerFace = 4
	FacesPerCube    = 6
	IndicesPerFace  = 6 // two triangles per quad
)

// FaceName identifies one side of an axis-aligned cube
type FaceName int

const (
	Front FaceName = iota
	Back
	Top
	Bottom
	Right
	Left
)

func (f FaceName) String() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Vertex is a position with the outward normal of the face it belongs to
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Face is a quad with counter-clockwise winding when seen from outside the cube
type Face struct {
	Name     FaceName
	Vertices [VerticesPerFace]Vertex
}

// Cube is an axis-aligned cube centered at the origin
type Cube struct {
	Size  float32
	Faces [FacesPerCube]Face
}

// GenerateUnitCube builds a cube of the given edge length as six quads
// (front, back, top, bottom, right, left), each with its own normal.
func GenerateUnitCube(size float32) Cube {
	s := size / 2

	quad := func(name FaceName, normal mgl32.Vec3, corners ...mgl32.Vec3) Face {
		face := Face{Name: name}
		for i, c := range corners {
			face.Vertices[i] = Vertex{Position: c, Normal: normal}
		}
		return face
	}

	return Cube{
		Size: size,
		Faces: [FacesPerCube]Face{
			quad(Front, mgl32.Vec3{0, 0, 1},
				mgl32.Vec3{-s, -s, s}, mgl32.Vec3{s, -s, s}, mgl32.Vec3{s, s, s}, mgl32.Vec3{-s, s, s}),
			quad(Back, mgl32.Vec3{0, 0, -1},
				mgl32.Vec3{-s, -s, -s}, mgl32.Vec3{-s, s, -s}, mgl32.Vec3{s, s, -s}, mgl32.Vec3{s, -s, -s}),
			quad(Top, mgl32.Vec3{0, 1, 0},
				mgl32.Vec3{-s, s, -s}, mgl32.Vec3{-s, s, s}, mgl32.Vec3{s, s, s}, mgl32.Vec3{s, s, -s}),
			quad(Bottom, mgl32.Vec3{0, -1, 0},
				mgl32.Vec3{-s, -s, -s}, mgl32.Vec3{s, -s, -s}, mgl32.Vec3{s, -s, s}, mgl32.Vec3{-s, -s, s}),
			quad(Right, mgl32.Vec3{1, 0, 0},
				mgl32.Vec3{s, -s, -s}, mgl32.Vec3{s, s, -s}, mgl32.Vec3{s, s, s}, mgl32.Vec3{s, -s, s}),
			quad(Left, mgl32.Vec3{-1, 0, 0},
				mgl32.Vec3{-s, -s, -s}, mgl32.Vec3{-s, -s, s}, mgl32.Vec3{-s, s, s}, mgl32.Vec3{-s, s, -s}),
		},
	}
}

// VertexCount returns the number of vertices the cube emits
func (c Cube) VertexCount() int {
	return FacesPerCube * VerticesPerFace
}

// Interleaved flattens the cube into position/normal floats ready for a vertex buffer
func (c Cube) Interleaved() []float32 {
	data := make([]float32, 0, c.VertexCount()*FloatsPerVertex)
	for _, face := range c.Faces {
		for _, v := range face.Vertices {
			data = append(data, v.Position[0], v.Position[1], v.Position[2])
			data = append(data, v.Normal[0], v.Normal[1], v.Normal[2])
		}
	}
	return data
}

// Indices splits every quad into two triangles (0,1,2) and (2,3,0),
// which keeps the quad's winding.
func (c Cube) Indices() []uint32 {
	indices := make([]uint32, 0, FacesPerCube*IndicesPerFace)
	for face := 0; face < FacesPerCube; face++ {
		base := uint32(face * VerticesPerFace)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return indices
}
