// Package input maps mouse and keyboard events onto the camera and clip plane.
package input

import (
	"io"
	"log"

	"github.com/leterax/virtual-classroom/pkg/camera"
	"github.com/leterax/virtual-classroom/pkg/clip"
)

// Defaults for Settings
const (
	DefaultSensitivity = 0.1
	DefaultZoomStep    = 0.5
)

// Host is the window system as seen by the controller: the only commands
// the controller ever sends back.
type Host interface {
	SetMouseCaptured(captured bool)
	RequestClose()
}

// Settings tunes how strongly input moves the camera
type Settings struct {
	Sensitivity float32 // degrees per pixel of drag
	ZoomStep    float32 // distance change per zoom key event
}

// DragState tracks a left-button drag
type DragState struct {
	LastX, LastY float64
	Dragging     bool
	FirstSample  bool
}

// Controller owns the drag state machine and applies input to the camera and clip plane
type Controller struct {
	camera   *camera.Orbit
	clip     *clip.Plane
	host     Host
	settings Settings
	logger   *log.Logger

	drag DragState
}

// NewController creates a controller that mutates cam and plane and sends
// cursor/close commands to host. A nil logger discards status output.
func NewController(cam *camera.Orbit, plane *clip.Plane, host Host, settings Settings, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if settings.Sensitivity == 0 {
		settings.Sensitivity = DefaultSensitivity
	}
	if settings.ZoomStep == 0 {
		settings.ZoomStep = DefaultZoomStep
	}
	return &Controller{
		camera:   cam,
		clip:     plane,
		host:     host,
		settings: settings,
		logger:   logger,
	}
}

// Drag returns a copy of the current drag state
func (c *Controller) Drag() DragState {
	return c.drag
}

// HandleMouseButton starts a drag on left press and ends it on left release
func (c *Controller) HandleMouseButton(button MouseButton, action Action) {
	if button != MouseButtonLeft {
		return
	}

	switch action {
	case Press:
		c.drag.Dragging = true
		c.drag.FirstSample = true
		c.host.SetMouseCaptured(true)
	case Release:
		c.endDrag()
	}
}

// HandleCursorPos rotates the camera while dragging. The first sample of a
// drag only records the position.
func (c *Controller) HandleCursorPos(x, y float64) {
	if !c.drag.Dragging {
		return
	}

	if c.drag.FirstSample {
		c.drag.LastX = x
		c.drag.LastY = y
		c.drag.FirstSample = false
		return
	}

	xoffset := float32(x-c.drag.LastX) * c.settings.Sensitivity
	yoffset := float32(c.drag.LastY-y) * c.settings.Sensitivity // screen y grows downward
	c.drag.LastX = x
	c.drag.LastY = y

	c.camera.Rotate(xoffset, yoffset)
}

// CancelDrag ends a drag without a button release, e.g. when focus is lost
func (c *Controller) CancelDrag() {
	if c.drag.Dragging {
		c.endDrag()
	}
}

func (c *Controller) endDrag() {
	c.drag.Dragging = false
	c.drag.FirstSample = false
	c.host.SetMouseCaptured(false)
}

// HandleKey applies zoom, clip plane and quit bindings
func (c *Controller) HandleKey(key Key, action Action) {
	switch key {
	case KeyEscape:
		if action == Press {
			c.host.RequestClose()
		}
	case KeyEqual, KeyKPAdd:
		if pressedOrHeld(action) {
			c.camera.Zoom(-c.settings.ZoomStep)
		}
	case KeyMinus, KeyKPSubtract:
		if pressedOrHeld(action) {
			c.camera.Zoom(c.settings.ZoomStep)
		}
	case KeyC:
		if action == Press {
			if c.clip.Toggle() {
				c.logger.Println("Clipping plane enabled")
			} else {
				c.logger.Println("Clipping plane disabled")
			}
		}
	case KeyJ:
		if pressedOrHeld(action) {
			c.logger.Printf("Clip plane D offset: %.2f", c.clip.Nudge(-1))
		}
	case KeyK:
		if pressedOrHeld(action) {
			c.logger.Printf("Clip plane D offset: %.2f", c.clip.Nudge(1))
		}
	}
}
