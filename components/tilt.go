package components

import (
	"github.com/automoto/popcards/shared/frames"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TiltData is the per-card state of the pop-out behavior. It is owned by
// the card's entity and never shared.
type TiltData struct {
	Target   gamemath.Pose  // desired pose from the latest pointer sample
	Current  gamemath.Pose  // eased pose that is actually rendered
	Hovering bool           // pointer or touch is active over the card
	Frame    *frames.Handle // scheduled easing step, nil while idle
	Attached bool
}

// Animating reports whether an easing step is scheduled.
func (t *TiltData) Animating() bool {
	return t.Frame.Active()
}

var Tilt = donburi.NewComponentType[TiltData]()
