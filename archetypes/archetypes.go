package archetypes

import (
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Card = newArchetype(
		tags.Card,
		components.Card,
		components.Object,
		components.Surface,
		components.GlowFade,
		components.Face,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
