package components

import (
	"github.com/automoto/popcards/shared/frames"
	"github.com/yohamta/donburi"
)

// FrameClockData owns the world's frame scheduler (singleton component).
type FrameClockData struct {
	Scheduler *frames.Scheduler
}

var FrameClock = donburi.NewComponentType[FrameClockData]()
