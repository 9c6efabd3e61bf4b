// Package render draws the classroom with OpenGL and runs the frame loop.
package render

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/virtual-classroom/internal/openglhelper"
	"github.com/leterax/virtual-classroom/pkg/app"
	"github.com/leterax/virtual-classroom/pkg/input"
	"github.com/leterax/virtual-classroom/pkg/primitive"
	"github.com/leterax/virtual-classroom/pkg/scene"
)

var (
	//go:embed shaders/vert.glsl
	vertexShaderSource string
	//go:embed shaders/frag.glsl
	fragmentShaderSource string
)

// Renderer handles rendering logic and the frame loop
type Renderer struct {
	window *openglhelper.Window
	state  *app.State

	shader *openglhelper.Shader
	cube   *openglhelper.Mesh
}

// NewRenderer opens the window and prepares the shared cube geometry
func NewRenderer(cfg app.Config, logger *log.Logger) (*Renderer, error) {
	if logger == nil {
		logger = log.Default()
	}

	window, err := openglhelper.NewWindow(cfg.Width, cfg.Height, cfg.Title, cfg.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	renderer := &Renderer{
		window: window,
		state:  app.NewState(cfg, window, logger),
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(renderer.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(renderer.cursorPosCallback)
	window.GLFWWindow().SetMouseButtonCallback(renderer.mouseButtonCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(renderer.framebufferSizeCallback)
	window.GLFWWindow().SetFocusCallback(renderer.focusCallback)

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	renderer.shader = shader
	renderer.cube = openglhelper.NewCubeMesh(primitive.GenerateUnitCube(1))

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	// Initial projection from the real framebuffer size
	width, height := window.Size()
	renderer.resize(width, height)

	return renderer, nil
}

// Run renders as fast as possible until the window is asked to close
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		r.window.PollEvents()
		r.render()
		r.window.SwapBuffers()
	}

	r.Cleanup()
}

// render draws one frame from the current state
func (r *Renderer) render() {
	frame := r.state.Frame()

	r.window.Clear(r.state.Config.ClearColor)

	r.shader.Use()
	r.shader.SetMat4("view", frame.View)
	r.shader.SetMat4("projection", frame.Projection)

	if frame.ClipOn {
		r.shader.SetVec4("clipPlane", frame.ClipPlane)
		gl.Enable(gl.CLIP_DISTANCE0)
	} else {
		gl.Disable(gl.CLIP_DISTANCE0)
	}

	r.setLighting(r.state.Config.Lighting)

	stack := scene.NewMatrixStack(mgl32.Ident4())
	for _, obj := range frame.Objects {
		r.drawObject(stack, obj)
	}
}

func (r *Renderer) setLighting(l scene.Lighting) {
	r.shader.SetVec3("globalAmbient", l.GlobalAmbient)
	r.shader.SetVec3("light.position", l.Light.Position)
	r.shader.SetVec3("light.ambient", l.Light.Ambient)
	r.shader.SetVec3("light.diffuse", l.Light.Diffuse)
	r.shader.SetVec3("light.specular", l.Light.Specular)
	r.shader.SetVec3("material.specular", l.Material.Specular)
	r.shader.SetFloat("material.shininess", l.Material.Shininess)
}

// drawObject draws the shared cube with the object's own model matrix and colour
func (r *Renderer) drawObject(stack scene.MatrixStack, obj scene.ColoredObject) {
	ambient, diffuse := r.state.Config.Lighting.Material.Resolve(obj.Color)

	r.shader.SetMat4("model", obj.Model(stack))
	r.shader.SetVec3("material.ambient", ambient)
	r.shader.SetVec3("material.diffuse", diffuse)
	r.cube.Draw()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	if r.cube != nil {
		r.cube.Delete()
		r.cube = nil
	}
	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}

	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	r.state.Input.HandleKey(input.Key(key), input.Action(action))
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.state.Input.HandleCursorPos(xpos, ypos)
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	r.state.Input.HandleMouseButton(input.MouseButton(button), input.Action(action))
}

func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		r.state.Input.CancelDrag()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.resize(width, height)
}

func (r *Renderer) resize(width, height int) {
	r.window.OnResize(width, height)
	r.state.Resize(width, height)
}
