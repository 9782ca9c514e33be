package factory

import (
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/automoto/popcards/systems"
	"github.com/yohamta/donburi/ecs"
)

// DeckLayout places n cards of the configured size in one centered row.
func DeckLayout(n int, screenW, screenH float64) []gamemath.Rect {
	if n <= 0 {
		return nil
	}
	w, h, gap := cfg.Deck.CardWidth, cfg.Deck.CardHeight, cfg.Deck.Gap
	total := float64(n)*w + float64(n-1)*gap
	x := (screenW - total) / 2
	y := (screenH-h)/2 + cfg.Deck.OffsetY

	rects := make([]gamemath.Rect, n)
	for i := range rects {
		rects[i] = gamemath.Rect{X: x + float64(i)*(w+gap), Y: y, W: w, H: h}
	}
	return rects
}

// CreateDeck spawns the hit-test space and every configured card. The
// caller owns the returned handles and detaches them on teardown.
func CreateDeck(ecs *ecs.ECS) []*systems.TiltHandle {
	spaceEntry := CreateSpace(ecs, cfg.C.Width, cfg.C.Height)
	space := components.Space.Get(spaceEntry)

	rects := DeckLayout(len(cfg.Deck.Cards), float64(cfg.C.Width), float64(cfg.C.Height))
	handles := make([]*systems.TiltHandle, 0, len(rects))
	for i, spec := range cfg.Deck.Cards {
		_, handle := CreateCard(ecs, space, spec, i, rects[i])
		handles = append(handles, handle)
	}
	return handles
}
