package input

// Key is a keyboard key. Values match GLFW key codes so the window layer can
// convert with a plain cast.
type Key int

const (
	KeyUnknown    Key = -1
	KeyMinus      Key = 45
	KeyEqual      Key = 61
	KeyC          Key = 67
	KeyJ          Key = 74
	KeyK          Key = 75
	KeyEscape     Key = 256
	KeyKPSubtract Key = 333
	KeyKPAdd      Key = 334
)

// Action is the state change reported with a key or button event
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// MouseButton identifies a mouse button (GLFW numbering)
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// pressedOrHeld is true for the first press and for auto-repeat
func pressedOrHeld(a Action) bool {
	return a == Press || a == Repeat
}

// Help lists the controls in display order
var Help = []string{
	"Mouse Drag: Orbit camera",
	"+/- or Numpad +/-: Zoom in/out",
	"C: Toggle clipping plane",
	"J/K: Move clipping plane (when enabled)",
	"Esc: Quit",
}
