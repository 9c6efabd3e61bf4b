package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeEye(t *testing.T) {
	tcs := []struct {
		name                string
		yaw, pitch, dist    float32
		wantX, wantY, wantZ float32
	}{
		{name: "front", yaw: 0, pitch: 0, dist: 15, wantX: 0, wantY: 0, wantZ: 15},
		{name: "quarter turn", yaw: 90, pitch: 0, dist: 7, wantX: -7, wantY: 0, wantZ: 0},
		{name: "half turn", yaw: 180, pitch: 0, dist: 3, wantX: 0, wantY: 0, wantZ: -3},
		{name: "overhead", yaw: 0, pitch: 89, dist: 10, wantX: 0, wantY: 9.998477, wantZ: 0.174524},
		{name: "below", yaw: 0, pitch: -30, dist: 2, wantX: 0, wantY: -1, wantZ: 1.732051},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			eye := ComputeEye(tc.yaw, tc.pitch, tc.dist)
			want := mgl32.Vec3{tc.wantX, tc.wantY, tc.wantZ}
			for i := 0; i < 3; i++ {
				if math.Abs(float64(eye[i]-want[i])) > 1e-4 {
					t.Fatalf("ComputeEye(%v, %v, %v) = %v; want %v", tc.yaw, tc.pitch, tc.dist, eye, want)
				}
			}
		})
	}
}

func TestOrbit(t *testing.T) {
	Convey("Given an orbit camera", t, func() {
		cam := NewOrbit(0, 20, 15)

		Convey("the eye stays at the configured distance", func() {
			So(cam.Eye().Len(), ShouldAlmostEqual, 15, 1e-4)
		})

		Convey("pitch never leaves [-89, 89]", func() {
			for i := 0; i < 1000; i++ {
				cam.Rotate(3, 7.5)
				So(cam.Pitch(), ShouldBeBetweenOrEqual, MinPitch, MaxPitch)
			}
			So(cam.Pitch(), ShouldEqual, float32(MaxPitch))

			for i := 0; i < 1000; i++ {
				cam.Rotate(-3, -11)
				So(cam.Pitch(), ShouldBeBetweenOrEqual, MinPitch, MaxPitch)
			}
			So(cam.Pitch(), ShouldEqual, float32(MinPitch))
		})

		Convey("yaw accumulates without wrapping", func() {
			cam.Rotate(400, 0)
			So(cam.Yaw(), ShouldEqual, float32(400))
		})

		Convey("distance never leaves [1, 50]", func() {
			for i := 0; i < 200; i++ {
				cam.Zoom(0.5)
				So(cam.Distance(), ShouldBeBetweenOrEqual, MinDistance, MaxDistance)
			}
			So(cam.Distance(), ShouldEqual, float32(MaxDistance))

			for i := 0; i < 200; i++ {
				cam.Zoom(-0.5)
				So(cam.Distance(), ShouldBeBetweenOrEqual, MinDistance, MaxDistance)
			}
			So(cam.Distance(), ShouldEqual, float32(MinDistance))
		})

		Convey("at the pitch limits the eye never reaches the poles", func() {
			for _, pitch := range []float32{-1000, 1000} {
				c := NewOrbit(0, pitch, 10)
				y := c.Eye().Y()
				So(y, ShouldBeGreaterThan, -10)
				So(y, ShouldBeLessThan, 10)
			}
		})

		Convey("the constructor clamps its inputs", func() {
			c := NewOrbit(0, 120, 0)
			So(c.Pitch(), ShouldEqual, float32(MaxPitch))
			So(c.Distance(), ShouldEqual, float32(MinDistance))
		})
	})
}

func TestViewMatrix(t *testing.T) {
	Convey("Given the default orbit", t, func() {
		cam := NewOrbit(30, 20, 15)
		view := cam.ViewMatrix()

		Convey("the eye maps to the view-space origin", func() {
			p := view.Mul4x1(cam.Eye().Vec4(1))
			So(p.Vec3().Len(), ShouldAlmostEqual, 0, 1e-4)
		})

		Convey("the target sits straight ahead on -Z", func() {
			p := view.Mul4x1(Target.Vec4(1))
			So(p.X(), ShouldAlmostEqual, 0, 1e-4)
			So(p.Y(), ShouldAlmostEqual, 0, 1e-4)
			So(p.Z(), ShouldAlmostEqual, -15, 1e-4)
		})

		Convey("the rotation part is orthonormal", func() {
			r := view.Mat3()
			for i := 0; i < 3; i++ {
				So(r.Row(i).Len(), ShouldAlmostEqual, 1, 1e-4)
				for j := i + 1; j < 3; j++ {
					So(r.Row(i).Dot(r.Row(j)), ShouldAlmostEqual, 0, 1e-4)
				}
			}
		})

		Convey("the right axis is horizontal", func() {
			So(view.Mat3().Row(0).Y(), ShouldAlmostEqual, 0, 1e-5)
		})
	})
}

func TestPerspective(t *testing.T) {
	Convey("Given a framebuffer size", t, func() {
		Convey("a zero height does not divide by zero", func() {
			m := Perspective(DefaultFOV, 800, 0)
			for _, v := range m {
				So(math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), ShouldBeFalse)
			}
			So(m, ShouldResemble, Perspective(DefaultFOV, 800, 1))
		})

		Convey("a minimized 0x0 framebuffer stays finite", func() {
			m := Perspective(DefaultFOV, 0, 0)
			for _, v := range m {
				So(math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), ShouldBeFalse)
			}
			So(m, ShouldResemble, Perspective(DefaultFOV, 1, 1))
		})

		Convey("the aspect ratio follows the framebuffer", func() {
			m := Perspective(DefaultFOV, 800, 600)
			So(m[5]/m[0], ShouldAlmostEqual, 800.0/600.0, 1e-4)
		})
	})
}
