// internal/defs/types.go
package defs

import "fmt"

// SpriteType identifies which sprite represents an entity.
type SpriteType int

const (
	SpriteNone SpriteType = iota
	Ship
	ShipDestroyed
	Bullet
	EnemyBullet
	EnemyShipA1
	EnemyShipA2
	EnemyShipB1
	EnemyShipB2
	EnemyShipC1
	EnemyShipC2
	EnemyShipSpecial
	Explosion
)

var spriteNames = map[SpriteType]string{
	SpriteNone:       "None",
	Ship:             "Ship",
	ShipDestroyed:    "ShipDestroyed",
	Bullet:           "Bullet",
	EnemyBullet:      "EnemyBullet",
	EnemyShipA1:      "EnemyShipA1",
	EnemyShipA2:      "EnemyShipA2",
	EnemyShipB1:      "EnemyShipB1",
	EnemyShipB2:      "EnemyShipB2",
	EnemyShipC1:      "EnemyShipC1",
	EnemyShipC2:      "EnemyShipC2",
	EnemyShipSpecial: "EnemyShipSpecial",
	Explosion:        "Explosion",
}

func (s SpriteType) String() string {
	if name, ok := spriteNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SpriteType(%d)", int(s))
}

// ParseSpriteType looks a sprite up by its String() name.
func ParseSpriteType(name string) (SpriteType, error) {
	for s, n := range spriteNames {
		if n == name {
			return s, nil
		}
	}
	return SpriteNone, fmt.Errorf("unknown sprite type %q", name)
}

// UnmarshalText lets wave files name sprites directly.
func (s *SpriteType) UnmarshalText(text []byte) error {
	parsed, err := ParseSpriteType(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (s SpriteType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
