package systems

import (
	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGlowFade eases each card's glow back in after its light override
// is lifted. Suppression drops the glow immediately.
func UpdateGlowFade(e *ecs.ECS) {
	dt := 1 / float32(ebiten.TPS())
	tags.Card.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.GlowFade) || !entry.HasComponent(components.Surface) {
			return
		}
		stepGlowFade(components.GlowFade.Get(entry), components.Surface.Get(entry), dt)
	})
}

func stepGlowFade(fade *components.GlowFadeData, surface *components.SurfaceData, dt float32) {
	if surface.Light.Active {
		fade.Tween = nil
		fade.Level = 0
		fade.Suppressed = true
		return
	}

	if fade.Suppressed {
		fade.Suppressed = false
		if cfg.Glow.FadeInSeconds > 0 {
			fade.Tween = gween.New(fade.Level, 1, cfg.Glow.FadeInSeconds, ease.OutCubic)
		}
	}

	if fade.Tween == nil {
		fade.Level = 1
		return
	}

	level, finished := fade.Tween.Update(dt)
	fade.Level = level
	if finished {
		fade.Tween = nil
		fade.Level = 1
	}
}
