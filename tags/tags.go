package tags

import "github.com/yohamta/donburi"

var (
	Card = donburi.NewTag().SetName("Card")
)

// Resolv tags for hit testing
const (
	ResolvCard    = "card"
	ResolvPointer = "pointer"
)
