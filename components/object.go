package components

import (
	"github.com/automoto/popcards/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a card's hit area in the resolv space.
type ObjectData struct {
	*resolv.Object
}

// Bounds returns the hit area as a bounding box.
func (o *ObjectData) Bounds() gamemath.Rect {
	if o == nil || o.Object == nil {
		return gamemath.Rect{}
	}
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()
