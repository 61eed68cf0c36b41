package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Snapshot is one frame of device state. It is read once per frame and every
// consumer of that frame works from the same copy.
type Snapshot struct {
	// CursorX/Y are the pointer position in screen pixels.
	CursorX float64
	CursorY float64
	// DeltaX/Y are the pointer movement since the previous snapshot.
	DeltaX float64
	DeltaY float64
	// WheelY is the vertical wheel delta for this frame.
	WheelY float64

	// PanHeld is true while the secondary (right) button is held.
	PanHeld bool
	// PaintPressed is true on the frame the primary button was pressed.
	PaintPressed bool
	// PaintHeld is true while the primary button is held.
	PaintHeld bool

	// ModeKey is the tile mode picked with keys 1-4, or -1.
	ModeKey int
	// ToggleDebug is true on the frame F3 was pressed.
	ToggleDebug bool
	// Copy is true on the frame Ctrl+C was pressed.
	Copy bool
	// Quit is true on the frame Escape was pressed.
	Quit bool
}

var modeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Input polls ebiten for pointer, wheel and keyboard state.
type Input struct {
	lastX   float64
	lastY   float64
	started bool
}

func NewInput() *Input {
	return &Input{}
}

// Poll reads the current device state. Call exactly once per Update.
func (i *Input) Poll() Snapshot {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	s := Snapshot{
		CursorX:      float64(mx),
		CursorY:      float64(my),
		WheelY:       wy,
		PanHeld:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		PaintPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PaintHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ModeKey:      -1,
		ToggleDebug:  inpututil.IsKeyJustPressed(ebiten.KeyF3),
		Copy:         inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl),
		Quit:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	for idx, k := range modeKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.ModeKey = idx
		}
	}
	i.track(&s)
	return s
}

// track fills the movement delta from the previous snapshot.
func (i *Input) track(s *Snapshot) {
	if i.started {
		s.DeltaX = s.CursorX - i.lastX
		s.DeltaY = s.CursorY - i.lastY
	}
	i.lastX, i.lastY = s.CursorX, s.CursorY
	i.started = true
}
