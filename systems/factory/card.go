package factory

import (
	"github.com/automoto/popcards/archetypes"
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/automoto/popcards/systems"
	"github.com/automoto/popcards/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCard spawns a card with its hit area in space and attaches the
// tilt behavior. The returned handle detaches it again.
func CreateCard(ecs *ecs.ECS, space *resolv.Space, spec cfg.CardSpec, index int, rect gamemath.Rect) (*donburi.Entry, *systems.TiltHandle) {
	card := archetypes.Card.Spawn(ecs)

	components.Card.SetValue(card, components.CardData{
		Index:    index,
		Label:    spec.Label,
		Subtitle: spec.Subtitle,
		Vars:     spec.Vars,
	})

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvCard)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = card
	space.Add(obj)
	components.Object.SetValue(card, components.ObjectData{Object: obj})

	return card, systems.AttachTilt(ecs, card)
}
