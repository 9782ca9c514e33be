package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerSource is the device a pointer sample came from.
type PointerSource int

const (
	PointerNone PointerSource = iota
	PointerMouse
	PointerTouch
)

// PointerSample is one polled pointer position.
type PointerSample struct {
	Position math.Vec2
	Active   bool // false when no pointer is over the window (touch lifted, cursor outside)
	Source   PointerSource
}

// PointerData tracks the single tracked pointer (singleton component).
// Only the first active touch is followed; further touches are ignored.
type PointerData struct {
	Last     PointerSample
	TouchID  ebiten.TouchID
	Touching bool           // TouchID refers to a live touch
	Cursor   math.Vec2      // last mouse position, tells real motion from a stale cursor
	Hovered  *donburi.Entry // card currently under the pointer
	Probe    *resolv.Object // 1x1 object used for broad-phase hit tests
}

var Pointer = donburi.NewComponentType[PointerData]()
