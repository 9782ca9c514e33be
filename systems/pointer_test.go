package systems

import (
	"testing"

	"github.com/automoto/popcards/components"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

func sampleAt(x, y float64) components.PointerSample {
	return components.PointerSample{
		Position: math.NewVec2(x, y),
		Active:   true,
		Source:   components.PointerMouse,
	}
}

func TestDispatchEnterMoveLeave(t *testing.T) {
	e := newTestWorld(t)
	left, _ := newTestCard(t, e, 0, gamemath.Rect{X: 100, Y: 100, W: 200, H: 280}, nil)
	right, _ := newTestCard(t, e, 1, gamemath.Rect{X: 400, Y: 100, W: 200, H: 280}, nil)

	DispatchPointer(e, sampleAt(110, 110))
	if HoveredCard(e) != left {
		t.Fatal("expected left card hovered")
	}
	if !components.Tilt.Get(left).Hovering {
		t.Error("expected left card to receive enter")
	}
	if components.Surface.Get(left).PointerX != 5 {
		t.Errorf("expected pointer x 5%%, got %v", components.Surface.Get(left).PointerX)
	}

	DispatchPointer(e, sampleAt(500, 240))
	if HoveredCard(e) != right {
		t.Fatal("expected right card hovered")
	}
	if components.Tilt.Get(left).Hovering {
		t.Error("expected left card to receive leave")
	}
	if !components.Tilt.Get(right).Hovering {
		t.Error("expected right card to receive enter")
	}

	// Gap between the cards
	DispatchPointer(e, sampleAt(350, 240))
	if HoveredCard(e) != nil {
		t.Error("expected nothing hovered over the gap")
	}
	if components.Tilt.Get(right).Hovering {
		t.Error("expected right card to receive leave")
	}
}

func TestDispatchInactiveSampleLeaves(t *testing.T) {
	e := newTestWorld(t)
	card, _ := newTestCard(t, e, 0, testRect, nil)

	DispatchPointer(e, sampleAt(150, 150))
	DispatchPointer(e, components.PointerSample{Position: math.NewVec2(150, 150), Source: components.PointerTouch})

	if components.Tilt.Get(card).Hovering {
		t.Error("expected lifted touch to leave the card")
	}
	if !components.Surface.Get(card).Light.Active {
		t.Error("expected light suppressed after leave")
	}
}

func TestDispatchTopmostCardWins(t *testing.T) {
	e := newTestWorld(t)
	below, _ := newTestCard(t, e, 0, gamemath.Rect{X: 100, Y: 100, W: 200, H: 200}, nil)
	above, _ := newTestCard(t, e, 1, gamemath.Rect{X: 200, Y: 150, W: 200, H: 200}, nil)

	DispatchPointer(e, sampleAt(250, 200))
	if HoveredCard(e) != above {
		t.Fatal("expected the higher index card to win the overlap")
	}
	if components.Tilt.Get(below).Hovering {
		t.Error("expected the covered card to stay idle")
	}
}

func TestDispatchMovesUpdateTarget(t *testing.T) {
	e := newTestWorld(t)
	card, _ := newTestCard(t, e, 0, testRect, nil)

	DispatchPointer(e, sampleAt(testRect.X, testRect.Y))
	if got := components.Tilt.Get(card).Target.RotationY; got != 24 {
		t.Fatalf("expected rotationY 24 at the top-left corner, got %v", got)
	}

	DispatchPointer(e, sampleAt(testRect.X+testRect.W, testRect.Y))
	if got := components.Tilt.Get(card).Target.RotationY; got != -24 {
		t.Errorf("expected rotationY -24 at the top-right corner, got %v", got)
	}
	if PendingFrames(e) != 1 {
		t.Errorf("expected a single pending frame, got %d", PendingFrames(e))
	}
}

func TestDispatchSkipsDetachedCards(t *testing.T) {
	e := newTestWorld(t)
	_, handle := newTestCard(t, e, 0, testRect, nil)

	DispatchPointer(e, sampleAt(150, 150))
	handle.Detach()
	if HoveredCard(e) != nil {
		t.Error("expected detach to clear the hovered card")
	}

	DispatchPointer(e, sampleAt(160, 160))
	if HoveredCard(e) != nil {
		t.Error("expected detached card to be ignored by hit tests")
	}
}
