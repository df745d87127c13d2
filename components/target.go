package components

import "github.com/yohamta/donburi"

type TargetData struct {
	Hit        bool
	SpriteSlot int
}

var Target = donburi.NewComponentType[TargetData]()
