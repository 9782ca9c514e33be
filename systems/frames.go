package systems

import (
	"github.com/automoto/popcards/components"
	"github.com/automoto/popcards/shared/frames"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFrames runs the easing steps scheduled for this tick. It is the
// only place scheduled callbacks execute, once per ebiten tick.
func UpdateFrames(e *ecs.ECS) {
	getOrCreateFrameClock(e).Tick()
}

// getOrCreateFrameClock returns the world's frame scheduler.
func getOrCreateFrameClock(e *ecs.ECS) *frames.Scheduler {
	entry, ok := components.FrameClock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.FrameClock))
	}
	clock := components.FrameClock.Get(entry)
	if clock.Scheduler == nil {
		clock.Scheduler = frames.NewScheduler()
	}
	return clock.Scheduler
}

// PendingFrames returns how many easing steps wait for the next tick.
func PendingFrames(e *ecs.ECS) int {
	return getOrCreateFrameClock(e).Pending()
}
