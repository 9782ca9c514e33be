package factory

import (
	"github.com/automoto/popcards/archetypes"
	"github.com/automoto/popcards/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cell size of the hit-test space, in pixels
const spaceCellSize = 16

// CreateSpace spawns the resolv space that holds the card hit areas.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, spaceCellSize, spaceCellSize)
	components.Space.Set(space, spaceData)
	return space
}
