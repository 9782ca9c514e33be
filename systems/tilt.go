package systems

import (
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TiltHandle is the registration returned by AttachTilt.
type TiltHandle struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

// AttachTilt gives a card entity the pop-out behavior. The card starts at
// rest with its light suppressed and no easing step scheduled.
func AttachTilt(e *ecs.ECS, entry *donburi.Entry) *TiltHandle {
	if !entry.HasComponent(components.Tilt) {
		entry.AddComponent(components.Tilt)
	}
	if !entry.HasComponent(components.Surface) {
		entry.AddComponent(components.Surface)
	}

	tilt := components.Tilt.Get(entry)
	tilt.Frame.Cancel()
	components.Tilt.SetValue(entry, components.TiltData{
		Target:   gamemath.NeutralPose(),
		Current:  gamemath.NeutralPose(),
		Attached: true,
	})

	components.Surface.SetValue(entry, components.NewSurface())
	SuppressLight(components.Surface.Get(entry))

	return &TiltHandle{ecs: e, entry: entry}
}

// Entry returns the card the handle is attached to, or nil after Detach.
func (h *TiltHandle) Entry() *donburi.Entry {
	if h == nil {
		return nil
	}
	return h.entry
}

// Detach cancels any scheduled easing step and removes the behavior from
// the card. Safe to call more than once.
func (h *TiltHandle) Detach() {
	if h == nil || h.entry == nil {
		return
	}
	entry := h.entry
	h.entry = nil

	if p, ok := components.Pointer.First(h.ecs.World); ok {
		pointer := components.Pointer.Get(p)
		if pointer.Hovered == entry {
			pointer.Hovered = nil
		}
	}

	if !entry.Valid() || !entry.HasComponent(components.Tilt) {
		return
	}
	tilt := components.Tilt.Get(entry)
	tilt.Frame.Cancel()
	tilt.Frame = nil
	entry.RemoveComponent(components.Tilt)
}

// TiltEnter starts tracking: the light is restored and the easing loop
// starts if it is not already running. Repeated enters are ignored.
func TiltEnter(e *ecs.ECS, entry *donburi.Entry) {
	tilt, surface, ok := tiltOf(entry)
	if !ok || tilt.Hovering {
		return
	}
	tilt.Hovering = true
	surface.Hovering = true
	RestoreLight(surface)
	scheduleTilt(e, entry, tilt)
}

// TiltMove takes a pointer sample in screen coordinates. It sets the
// target pose and writes the pointer position and shadow offset straight
// to the surface. Samples arriving while not hovering are ignored.
func TiltMove(e *ecs.ECS, entry *donburi.Entry, x, y float64) {
	tilt, surface, ok := tiltOf(entry)
	if !ok || !tilt.Hovering {
		return
	}

	var bounds gamemath.Rect
	if entry.HasComponent(components.Object) {
		bounds = components.Object.Get(entry).Bounds()
	}

	px, py := gamemath.PointerPercent(x, y, bounds)
	surface.PointerX, surface.PointerY = px, py

	ax := gamemath.EdgeAmplify(gamemath.Normalize(px))
	ay := gamemath.EdgeAmplify(gamemath.Normalize(py))

	// Bounds are read fresh so theme and panel changes apply immediately.
	target, shadow := gamemath.ComposeTarget(ax, ay, cfg.ReadTiltBounds(ActiveVars(e, entry)))
	tilt.Target = target.Sanitized()
	surface.ShadowX, surface.ShadowY = shadow.X, shadow.Y
}

// TiltLeave ends tracking: the light is suppressed, the target returns to
// rest and the loop keeps running until the card has settled.
func TiltLeave(e *ecs.ECS, entry *donburi.Entry) {
	tilt, surface, ok := tiltOf(entry)
	if !ok {
		return
	}
	tilt.Hovering = false
	surface.Hovering = false
	SuppressLight(surface)
	tilt.Target = gamemath.NeutralPose()

	if !tilt.Current.Within(tilt.Target, cfg.Easing.Tolerance) {
		scheduleTilt(e, entry, tilt)
	}
}

// ActiveVars returns the presentation variables for a card: its own vars,
// then the user's overrides, then the active theme.
func ActiveVars(e *ecs.ECS, entry *donburi.Entry) cfg.VarChain {
	var cardVars cfg.VarMap
	if entry.HasComponent(components.Card) {
		cardVars = components.Card.Get(entry).Vars
	}
	settings := GetOrCreateSettings(e)
	return cfg.VarChain{cardVars, settings.Overrides, settings.Theme().Vars}
}

// scheduleTilt requests the next easing step unless one is already pending,
// so a card never holds more than one registration.
func scheduleTilt(e *ecs.ECS, entry *donburi.Entry, tilt *components.TiltData) {
	if tilt.Animating() {
		return
	}
	tilt.Frame = getOrCreateFrameClock(e).Request(func(uint64) {
		stepTilt(e, entry)
	})
}

// stepTilt is one easing frame: move the current pose toward the target,
// write it out, and reschedule while hovering or still unsettled.
func stepTilt(e *ecs.ECS, entry *donburi.Entry) {
	tilt, surface, ok := tiltOf(entry)
	if !ok {
		return
	}
	tilt.Frame = nil

	factor := cfg.Easing.SettleFactor
	if tilt.Hovering {
		factor = cfg.Easing.HoverFactor
	}
	tilt.Current = tilt.Current.Step(tilt.Target, factor)
	surface.Transform = components.TransformFromPose(tilt.Current)

	if tilt.Hovering || !tilt.Current.Within(tilt.Target, cfg.Easing.Tolerance) {
		scheduleTilt(e, entry, tilt)
	}
}

func tiltOf(entry *donburi.Entry) (*components.TiltData, *components.SurfaceData, bool) {
	if entry == nil || !entry.Valid() {
		return nil, nil, false
	}
	if !entry.HasComponent(components.Tilt) || !entry.HasComponent(components.Surface) {
		return nil, nil, false
	}
	return components.Tilt.Get(entry), components.Surface.Get(entry), true
}
