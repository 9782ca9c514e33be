package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the resolv cell space holding card hit areas (singleton).
var Space = donburi.NewComponentType[resolv.Space]()
