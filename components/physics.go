package components

import (
	"github.com/yohamta/donburi"
)

// PositionData is a fighter's origin: X is the horizontal centre, Y the feet baseline.
type PositionData struct {
	X, Y float64
}

var Position = donburi.NewComponentType[PositionData]()

type PhysicsData struct {
	SpeedX  float64
	SpeedY  float64
	Gravity float64
	Damping float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
