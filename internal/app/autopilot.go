package app

import (
	"go-space-invaders/internal/component"
	"go-space-invaders/internal/utils"
)

// Autopilot plays headless sessions: it slides under the closest shooter and
// keeps firing.
type Autopilot struct {
	rng *utils.PRNGService
	// Chance of skipping a tick's fire button, so runs differ with the seed.
	hesitation float64
}

func NewAutopilot(rng *utils.PRNGService) *Autopilot {
	return &Autopilot{rng: rng, hesitation: 0.2}
}

// Input decides the next tick's input for g.
func (a *Autopilot) Input(g *Game) component.Input {
	var in component.Input
	player := g.World.Player
	if player == nil || player.IsDestroyed() {
		return in
	}

	px, _ := player.Muzzle()
	target, found := 0, false
	for _, id := range g.FormationSystem.Shooters() {
		ship := g.World.Ships[id]
		cx := ship.X() + ship.Width()/2
		if !found || abs(cx-px) < abs(target-px) {
			target, found = cx, true
		}
	}
	if bonus := g.World.BonusShip(); bonus != nil && !bonus.IsDestroyed() && bonus.X() > 0 {
		target, found = bonus.X()+bonus.Width(), true
	}

	if found {
		switch {
		case target > px+player.Speed():
			in.Right = true
		case target < px-player.Speed():
			in.Left = true
		}
	}
	in.Fire = !a.rng.Chance(a.hesitation)
	return in
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
