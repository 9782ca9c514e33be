package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0
