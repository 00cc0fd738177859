package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer; all renderers draw into it in
// registration order.
const Default ecs.LayerID = 0
