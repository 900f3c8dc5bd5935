// internal/defs/tiers.go
package defs

// BonusPoints is awarded for the special ship.
const BonusPoints = 100

// Tier groups the two animation frames of one enemy type with its score.
type Tier struct {
	Name   string
	Points int
	Frames [2]SpriteType
}

// Tiers is the closed set of formation enemy types.
var Tiers = []Tier{
	{Name: "A", Points: 10, Frames: [2]SpriteType{EnemyShipA1, EnemyShipA2}},
	{Name: "B", Points: 20, Frames: [2]SpriteType{EnemyShipB1, EnemyShipB2}},
	{Name: "C", Points: 30, Frames: [2]SpriteType{EnemyShipC1, EnemyShipC2}},
}

var (
	pointTable = map[SpriteType]int{}
	frameTable = map[SpriteType]SpriteType{}
)

func init() {
	for _, t := range Tiers {
		a, b := t.Frames[0], t.Frames[1]
		pointTable[a] = t.Points
		pointTable[b] = t.Points
		frameTable[a] = b
		frameTable[b] = a
	}
}

// PointValue returns the score of an enemy drawn with sprite s, 0 for
// anything outside the tier table.
func PointValue(s SpriteType) int {
	return pointTable[s]
}

// NextFrame returns the other animation frame of s. Sprites without an
// animation pair report false.
func NextFrame(s SpriteType) (SpriteType, bool) {
	next, ok := frameTable[s]
	return next, ok
}

// IsEnemyFrame reports whether s is one of the tier animation frames.
func IsEnemyFrame(s SpriteType) bool {
	_, ok := frameTable[s]
	return ok
}
