package app

import (
	"testing"

	"github.com/leterax/virtual-classroom/pkg/camera"
	"github.com/leterax/virtual-classroom/pkg/input"
	"github.com/leterax/virtual-classroom/pkg/scene"
	. "github.com/smartystreets/goconvey/convey"
)

type nopHost struct{ closed bool }

func (h *nopHost) SetMouseCaptured(bool) {}
func (h *nopHost) RequestClose()         { h.closed = true }

func TestState(t *testing.T) {
	Convey("Given the default state", t, func() {
		host := &nopHost{}
		s := NewState(DefaultConfig(), host, nil)

		Convey("the camera and clip plane start where the classroom is in view", func() {
			So(s.Camera.Yaw(), ShouldEqual, float32(0))
			So(s.Camera.Pitch(), ShouldEqual, float32(20))
			So(s.Camera.Distance(), ShouldEqual, float32(15))
			So(s.Clip.Enabled(), ShouldBeFalse)
			So(s.Clip.Offset(), ShouldEqual, float32(-2))
		})

		Convey("the projection matches the window size", func() {
			w, h := s.Viewport()
			So(w, ShouldEqual, 800)
			So(h, ShouldEqual, 600)
			So(s.Projection(), ShouldResemble, camera.Perspective(camera.DefaultFOV, 800, 600))
		})

		Convey("resizing recomputes the projection", func() {
			s.Resize(1024, 0)
			So(s.Projection(), ShouldResemble, camera.Perspective(camera.DefaultFOV, 1024, 1))
		})

		Convey("input flows through to the frame snapshot", func() {
			before := s.Frame()
			So(len(before.Objects), ShouldEqual, scene.ObjectCount)
			So(before.ClipOn, ShouldBeFalse)

			s.Input.HandleKey(input.KeyC, input.Press)
			s.Input.HandleKey(input.KeyEqual, input.Press)
			s.Input.HandleKey(input.KeyEscape, input.Press)

			after := s.Frame()
			So(after.ClipOn, ShouldBeTrue)
			So(after.ClipPlane.W(), ShouldEqual, float32(-2))
			So(after.Eye.Len(), ShouldAlmostEqual, 14.5, 1e-4)
			So(after.View, ShouldNotResemble, before.View)
			So(after.Objects, ShouldResemble, before.Objects)
			So(host.closed, ShouldBeTrue)
		})
	})
}
