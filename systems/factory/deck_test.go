package factory

import (
	"testing"

	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/systems"
	"github.com/automoto/popcards/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestDeckLayoutCentersRow(t *testing.T) {
	rects := DeckLayout(3, 960, 540)
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}

	w, gap := cfg.Deck.CardWidth, cfg.Deck.Gap
	left := rects[0].X
	right := rects[2].X + rects[2].W
	if left != 960-right {
		t.Errorf("expected equal margins, got %v and %v", left, 960-right)
	}
	for i := 1; i < len(rects); i++ {
		if got := rects[i].X - rects[i-1].X; got != w+gap {
			t.Errorf("card %d: expected stride %v, got %v", i, w+gap, got)
		}
		if rects[i].Y != rects[0].Y {
			t.Errorf("card %d: expected one row", i)
		}
	}

	if DeckLayout(0, 960, 540) != nil {
		t.Error("expected no rects for an empty deck")
	}
}

func TestCreateDeckAttachesEveryCard(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	handles := CreateDeck(e)

	if len(handles) != len(cfg.Deck.Cards) {
		t.Fatalf("expected %d handles, got %d", len(cfg.Deck.Cards), len(handles))
	}

	count := 0
	tags.Card.Each(e.World, func(entry *donburi.Entry) {
		count++
		if !entry.HasComponent(components.Tilt) {
			t.Error("expected tilt attached")
		}
		if !components.Surface.Get(entry).Light.Active {
			t.Error("expected light suppressed at start")
		}
		obj := components.Object.Get(entry)
		if obj.Data != entry {
			t.Error("expected hit area to point back at its card")
		}
	})
	if count != len(cfg.Deck.Cards) {
		t.Errorf("expected %d cards, got %d", len(cfg.Deck.Cards), count)
	}

	for _, h := range handles {
		h.Detach()
	}
	if systems.PendingFrames(e) != 0 {
		t.Error("expected nothing scheduled after detaching the deck")
	}
}
