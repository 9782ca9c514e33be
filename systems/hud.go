package systems

import (
	"fmt"

	"github.com/automoto/popcards/components"
	cfg "github.com/automoto/popcards/config"
	"github.com/automoto/popcards/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var hudHints = map[components.InputMethod]string{
	components.InputKeyboard: "[ ] theme   Tab panel   R reset   F3 debug",
	components.InputGamepad:  "LB/RB theme   Start panel   Back debug",
	components.InputTouch:    "touch a card",
}

// DrawHUD renders the active theme name and the control hints along the
// bottom edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)
	face := fonts.Hint.Get()

	margin := int(cfg.HUD.Margin)
	y := cfg.C.Height - margin

	theme := fmt.Sprintf("theme: %s", settings.Theme().Name)
	text.Draw(screen, theme, face, margin, y, cfg.HUD.TextColor)

	hint := hudHints[input.LastInputMethod]
	b := text.BoundString(face, hint)
	text.Draw(screen, hint, face, cfg.C.Width-b.Dx()-margin, y, cfg.HUD.DimColor)
}
