package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// Defeated reports whether the fighter has no health left.
func (h *HealthData) Defeated() bool {
	return h.Current <= 0
}

// HealthBarData is the eased value the HUD draws. It trails HealthData.Current.
type HealthBarData struct {
	Displayed float64
	Target    int
	Tween     *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
