package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the fighter's body hitbox inside the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space shared by all body and attack boxes.
var Space = donburi.NewComponentType[resolv.Space]()
