package systems

import (
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/automoto/popcards/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePointer polls the mouse or the first touch and dispatches the
// sample to the cards. Must run before UpdateFrames so a new target is
// eased toward on the same tick.
func UpdatePointer(e *ecs.ECS) {
	pointer := getOrCreatePointer(e)
	DispatchPointer(e, pollPointer(pointer))
}

// pollPointer reads the current pointer sample. A live touch wins over
// the mouse; only the first touch is followed until it lifts.
func pollPointer(pointer *components.PointerData) components.PointerSample {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	if pointer.Touching && !containsTouch(touchIDs, pointer.TouchID) {
		pointer.Touching = false
	}
	if !pointer.Touching && len(touchIDs) > 0 {
		pointer.TouchID = touchIDs[0]
		pointer.Touching = true
	}
	if pointer.Touching {
		x, y := ebiten.TouchPosition(pointer.TouchID)
		return components.PointerSample{
			Position: math.NewVec2(float64(x), float64(y)),
			Active:   true,
			Source:   components.PointerTouch,
		}
	}

	cx, cy := ebiten.CursorPosition()
	cursor := math.NewVec2(float64(cx), float64(cy))
	moved := cursor != pointer.Cursor
	pointer.Cursor = cursor

	// After a touch lifts the cursor keeps reporting the last touch point.
	if pointer.Last.Source == components.PointerTouch && !moved {
		return components.PointerSample{Position: cursor, Source: components.PointerTouch}
	}

	inside := cx >= 0 && cy >= 0 && cx < cfg.C.Width && cy < cfg.C.Height
	return components.PointerSample{
		Position: cursor,
		Active:   inside,
		Source:   components.PointerMouse,
	}
}

func containsTouch(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, t := range ids {
		if t == id {
			return true
		}
	}
	return false
}

// DispatchPointer turns a pointer sample into enter, move and leave calls.
// The topmost card under the pointer becomes the hovered card; the card
// it replaces gets a leave. Moves are sent on enter and whenever the
// position changes.
func DispatchPointer(e *ecs.ECS, sample components.PointerSample) {
	pointer := getOrCreatePointer(e)

	var hit *donburi.Entry
	if sample.Active {
		hit = hitTest(e, pointer, sample.Position.X, sample.Position.Y)
	}

	if pointer.Hovered != nil && pointer.Hovered != hit {
		TiltLeave(e, pointer.Hovered)
		pointer.Hovered = nil
	}

	moved := sample.Position != pointer.Last.Position || sample.Active != pointer.Last.Active
	if hit != nil && pointer.Hovered == nil {
		pointer.Hovered = hit
		TiltEnter(e, hit)
		moved = true
	}
	if hit != nil && moved {
		TiltMove(e, hit, sample.Position.X, sample.Position.Y)
	}

	pointer.Last = sample
}

// HoveredCard returns the card currently under the pointer, if any.
func HoveredCard(e *ecs.ECS) *donburi.Entry {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		return nil
	}
	return components.Pointer.Get(entry).Hovered
}

// hitTest finds the topmost attached card containing (x, y). The resolv
// space narrows the candidates; the card bounds decide.
func hitTest(e *ecs.ECS, pointer *components.PointerData, x, y float64) *donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	probe := pointer.Probe
	if probe == nil || probe.Space != space {
		probe = resolv.NewObject(x, y, 1, 1, tags.ResolvPointer)
		space.Add(probe)
		pointer.Probe = probe
	} else {
		probe.X, probe.Y = x, y
		probe.Update()
	}

	check := probe.Check(0, 0, tags.ResolvCard)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	bestIndex := 0
	for _, obj := range check.ObjectsByTags(tags.ResolvCard) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Tilt) {
			continue
		}
		bounds := gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
		if !bounds.Contains(x, y) {
			continue
		}
		index := components.Card.Get(entry).Index
		if best == nil || index > bestIndex {
			best, bestIndex = entry, index
		}
	}
	return best
}

// getOrCreatePointer returns the singleton Pointer component, creating if needed
func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}
