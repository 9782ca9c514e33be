package components

import (
	"github.com/automoto/popcards/config"
	"github.com/yohamta/donburi"
)

// CardData identifies one interactive card.
type CardData struct {
	Index    int // draw order; higher draws on top and wins hit tests
	Label    string
	Subtitle string
	Vars     config.VarMap // per-card presentation variables (may be nil)
}

var Card = donburi.NewComponentType[CardData]()
