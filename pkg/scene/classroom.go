package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Classroom layout
const (
	DeskSpacing = 2.5
	DeskRows    = 2
	DeskColumns = 3

	ChairShade = 0.8
)

// Palette
var (
	FloorColor = mgl32.Vec3{0.7, 0.7, 0.7}
	WallColor  = mgl32.Vec3{0.9, 0.9, 0.8}
	BoardColor = mgl32.Vec3{0.1, 0.3, 0.1}
	DeskColor  = mgl32.Vec3{0.6, 0.4, 0.2}
	// Only chairs are darkened desk colour; avatars keep their own blue and red
	StudentAvatarColor = mgl32.Vec3{0.2, 0.5, 0.8}
	TeacherAvatarColor = mgl32.Vec3{0.8, 0.3, 0.3}
)

var (
	deskScale          = mgl32.Vec3{1.0, 0.4, 0.6}
	chairScale         = mgl32.Vec3{0.4, 0.6, 0.4}
	studentAvatarScale = mgl32.Vec3{0.3, 0.5, 0.3}

	teacherDeskScale   = mgl32.Vec3{1.5, 0.5, 0.7}
	teacherChairScale  = mgl32.Vec3{0.5, 0.8, 0.5}
	teacherAvatarScale = mgl32.Vec3{0.35, 0.6, 0.35}
)

// ObjectCount is the number of objects BuildClassroom returns
const ObjectCount = 1 + 3 + 1 + DeskRows*DeskColumns*3 + 3

// BuildClassroom returns the classroom in draw order: floor, back/left/right
// walls, board, then desk, chair and avatar for every seat, then the teacher's
// desk, chair and avatar.
func BuildClassroom() []ColoredObject {
	objects := make([]ColoredObject, 0, ObjectCount)

	box := func(kind Kind, color mgl32.Vec3, pos, scale mgl32.Vec3) ColoredObject {
		return ColoredObject{
			Kind:      kind,
			Transform: Transform{Translation: pos, Scale: scale},
			Color:     color,
		}
	}

	objects = append(objects,
		box(Floor, FloorColor, mgl32.Vec3{0, -0.1, 0}, mgl32.Vec3{10, 0.2, 8}),
		box(Wall, WallColor, mgl32.Vec3{0, 2.5, -4}, mgl32.Vec3{10, 5, 0.2}),
		box(Wall, WallColor, mgl32.Vec3{-5, 2.5, 0}, mgl32.Vec3{0.2, 5, 8}),
		box(Wall, WallColor, mgl32.Vec3{5, 2.5, 0}, mgl32.Vec3{0.2, 5, 8}),
		box(Board, BoardColor, mgl32.Vec3{0, 2.5, -3.85}, mgl32.Vec3{4, 2.5, 0.1}),
	)

	chairColor := Shade(DeskColor, ChairShade)
	for col := -1; col <= 1; col++ {
		for row := 0; row < DeskRows; row++ {
			x := float32(col) * DeskSpacing
			z := float32(row) * DeskSpacing

			chair := box(Chair, chairColor, mgl32.Vec3{x, 0.3, z}, chairScale)
			objects = append(objects,
				box(Desk, DeskColor, mgl32.Vec3{x, 0.5, z - 0.5}, deskScale),
				chair,
				seated(StudentAvatar, StudentAvatarColor, chair, studentAvatarScale),
			)
		}
	}

	teacherChair := box(TeacherChair, chairColor, mgl32.Vec3{0, 0.4, -2.2}, teacherChairScale)
	objects = append(objects,
		box(TeacherDesk, DeskColor, mgl32.Vec3{0, 0.7, -2.8}, teacherDeskScale),
		teacherChair,
		seated(TeacherAvatar, TeacherAvatarColor, teacherChair, teacherAvatarScale),
	)

	return objects
}

// seated places an avatar so its base rests on the seat's upper face
func seated(kind Kind, color mgl32.Vec3, seat ColoredObject, scale mgl32.Vec3) ColoredObject {
	pos := seat.Transform.Translation
	pos[1] = seat.Transform.Top() + scale.Y()/2
	return ColoredObject{
		Kind:      kind,
		Transform: Transform{Translation: pos, Scale: scale},
		Color:     color,
	}
}
