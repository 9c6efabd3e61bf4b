// Package app ties the camera, clip plane and input controller into the one
// state value the render loop owns.
package app

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/virtual-classroom/pkg/camera"
	"github.com/leterax/virtual-classroom/pkg/clip"
	"github.com/leterax/virtual-classroom/pkg/input"
	"github.com/leterax/virtual-classroom/pkg/scene"
)

// Config holds the compile-time settings of the viewer
type Config struct {
	Width  int
	Height int
	Title  string
	VSync  bool

	ClearColor mgl32.Vec4
	FOV        float32

	Yaw        float32
	Pitch      float32
	Distance   float32
	ClipOffset float32

	Input    input.Settings
	Lighting scene.Lighting
}

// DefaultConfig returns the classroom viewer's settings
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,
		Title:  "Virtual Classroom - GLFW",
		VSync:  false,

		ClearColor: mgl32.Vec4{0.8, 0.9, 1.0, 1.0}, // sky blue
		FOV:        camera.DefaultFOV,

		Yaw:        0,
		Pitch:      20, // look down slightly
		Distance:   15,
		ClipOffset: -2,

		Input: input.Settings{
			Sensitivity: input.DefaultSensitivity,
			ZoomStep:    input.DefaultZoomStep,
		},
		Lighting: scene.DefaultLighting(),
	}
}

// State is everything input can change between frames
type State struct {
	Config Config
	Camera *camera.Orbit
	Clip   *clip.Plane
	Input  *input.Controller

	width      int
	height     int
	projection mgl32.Mat4
}

// NewState builds the initial state; input commands go to host
func NewState(cfg Config, host input.Host, logger *log.Logger) *State {
	cam := camera.NewOrbit(cfg.Yaw, cfg.Pitch, cfg.Distance)
	plane := clip.NewPlane(cfg.ClipOffset)

	s := &State{
		Config: cfg,
		Camera: cam,
		Clip:   plane,
		Input:  input.NewController(cam, plane, host, cfg.Input, logger),
	}
	s.Resize(cfg.Width, cfg.Height)
	return s
}

// Resize records a new framebuffer size and recomputes the projection
func (s *State) Resize(width, height int) {
	s.width = width
	s.height = height
	s.projection = camera.Perspective(s.Config.FOV, width, height)
}

// Viewport returns the framebuffer size
func (s *State) Viewport() (width, height int) {
	return s.width, s.height
}

// Projection returns the current projection matrix
func (s *State) Projection() mgl32.Mat4 {
	return s.projection
}

// Frame is the per-frame snapshot the renderer draws from
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	ClipOn     bool
	ClipPlane  mgl32.Vec4
	Objects    []scene.ColoredObject
}

// Frame reads the camera and clip state once and rebuilds the classroom
func (s *State) Frame() Frame {
	return Frame{
		View:       s.Camera.ViewMatrix(),
		Projection: s.projection,
		Eye:        s.Camera.Eye(),
		ClipOn:     s.Clip.Enabled(),
		ClipPlane:  s.Clip.Equation(),
		Objects:    scene.BuildClassroom(),
	}
}
