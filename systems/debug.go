package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/fonts"
	"github.com/automoto/popcards/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every hit area in the resolv space and prints each
// card's transform, light state and the pending frame count.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	face := fonts.Debug.Get()

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.Cyan
			if obj.HasTags(tags.ResolvPointer) {
				c = cfg.BrightOrange
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	tags.Card.Each(ecs.World, func(entry *donburi.Entry) {
		bounds := components.Object.Get(entry).Bounds()
		surface := components.Surface.Get(entry)

		state := "idle"
		if entry.HasComponent(components.Tilt) {
			tilt := components.Tilt.Get(entry)
			switch {
			case tilt.Hovering:
				state = "hover"
			case tilt.Animating():
				state = "settling"
			}
		} else {
			state = "detached"
		}

		lines := []string{
			state,
			surface.Transform.CSS(),
			fmt.Sprintf("ptr %.0f%% %.0f%%", surface.PointerX, surface.PointerY),
			fmt.Sprintf("shadow %.1f %.1f", surface.ShadowX, surface.ShadowY),
			fmt.Sprintf("light override %t", surface.Light.Active),
		}
		y := int(bounds.Y+bounds.H) + 14
		for _, line := range lines {
			text.Draw(screen, line, face, int(bounds.X), y, cfg.HUD.DimColor)
			y += 12
		}
	})

	pending := fmt.Sprintf("frames pending: %d", PendingFrames(ecs))
	b := text.BoundString(face, pending)
	text.Draw(screen, pending, face, cfg.C.Width-b.Dx()-int(cfg.HUD.Margin), int(cfg.HUD.Margin)+10, color.RGBA{R: 255, G: 255, B: 255, A: 200})
}
