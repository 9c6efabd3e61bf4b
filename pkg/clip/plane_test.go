package clip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlane(t *testing.T) {
	Convey("Given a clip plane at offset -2", t, func() {
		p := NewPlane(-2)

		Convey("it starts disabled", func() {
			So(p.Enabled(), ShouldBeFalse)
			So(p.Keeps(mgl32.Vec3{0, 0, -100}), ShouldBeTrue)
		})

		Convey("toggling twice restores the state and keeps the offset", func() {
			So(p.Toggle(), ShouldBeTrue)
			So(p.Offset(), ShouldEqual, float32(-2))
			So(p.Toggle(), ShouldBeFalse)
			So(p.Offset(), ShouldEqual, float32(-2))
		})

		Convey("nudging moves the offset by 0.1 per step", func() {
			So(p.Nudge(1), ShouldAlmostEqual, -1.9, 1e-5)
			So(p.Nudge(-1), ShouldAlmostEqual, -2.0, 1e-5)
			So(p.Nudge(-3), ShouldAlmostEqual, -2.3, 1e-5)
			So(p.Enabled(), ShouldBeFalse)
		})

		Convey("the equation is z + offset", func() {
			So(p.Equation(), ShouldResemble, mgl32.Vec4{0, 0, 1, -2})
		})

		Convey("when enabled it keeps only z + offset >= 0", func() {
			p.Toggle()
			So(p.Keeps(mgl32.Vec3{5, 5, 3}), ShouldBeTrue)
			So(p.Keeps(mgl32.Vec3{0, 0, 2}), ShouldBeTrue)
			So(p.Keeps(mgl32.Vec3{-5, 9, 1.9}), ShouldBeFalse)
		})
	})
}
