package systems

import (
	"github.com/automoto/duel/components"
	"github.com/automoto/duel/gamemath"
	"github.com/automoto/duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Hitboxes is the pair of rectangles derived for a fighter on a given tick.
type Hitboxes struct {
	Body      gamemath.Rect
	Attack    gamemath.Rect
	HasAttack bool
}

// HitboxesOf derives the body and (if striking) attack rectangles of a fighter.
func HitboxesOf(e *donburi.Entry) Hitboxes {
	fighter := components.Fighter.Get(e)
	pos := *components.Position.Get(e)
	attack, ok := fighter.AttackRect(pos, *components.State.Get(e))
	return Hitboxes{
		Body:      fighter.BodyRect(pos),
		Attack:    attack,
		HasAttack: ok,
	}
}

// bodiesNear returns the fighters whose body objects share a cell with rect. The
// probe object only lives for the duration of the query. It is one pixel larger
// than rect on every side since resolv rounds cells down; callers still run the
// exact overlap test.
func bodiesNear(space *resolv.Space, rect gamemath.Rect) []*donburi.Entry {
	if space == nil {
		return nil
	}
	probe := resolv.NewObject(rect.Left()-1, rect.Top()-1, rect.Width()+2, rect.Height()+2)
	probe.AddTags(tags.ResolvAttack)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvBody)
	if check == nil {
		return nil
	}

	var found []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvBody) {
		if e, ok := obj.Data.(*donburi.Entry); ok {
			found = append(found, e)
		}
	}
	return found
}
