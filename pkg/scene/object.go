package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags what a scene object represents
type Kind uint8

const (
	Floor Kind = iota
	Wall
	Board
	Desk
	Chair
	StudentAvatar
	TeacherDesk
	TeacherChair
	TeacherAvatar
)

var kindNames = map[Kind]string{
	Floor:         "floor",
	Wall:          "wall",
	Board:         "board",
	Desk:          "desk",
	Chair:         "chair",
	StudentAvatar: "student avatar",
	TeacherDesk:   "teacher desk",
	TeacherChair:  "teacher chair",
	TeacherAvatar: "teacher avatar",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// ColoredObject is a unit cube with a placement and a flat colour
type ColoredObject struct {
	Kind      Kind
	Transform Transform
	Color     mgl32.Vec3
}

// Model returns the object's model matrix composed onto stack
func (o ColoredObject) Model(stack MatrixStack) mgl32.Mat4 {
	return stack.Push(o.Transform.Matrix()).Top()
}

// Shade scales every channel of c by f
func Shade(c mgl32.Vec3, f float32) mgl32.Vec3 {
	return c.Mul(f)
}
