package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GlowFadeData eases the theme glow in after the light override is lifted.
// It belongs to the renderer; the light controller never touches it.
type GlowFadeData struct {
	Tween      *gween.Tween
	Level      float32 // 0 = invisible, 1 = full theme glow
	Suppressed bool    // override state seen last frame
}

var GlowFade = donburi.NewComponentType[GlowFadeData]()

// FaceData caches the offscreen images a card face is drawn into.
type FaceData struct {
	Base  *ebiten.Image // background and label
	Lit   *ebiten.Image // base with glow applied
	Theme int           // theme index Base was drawn with
	Ready bool
}

var Face = donburi.NewComponentType[FaceData]()
