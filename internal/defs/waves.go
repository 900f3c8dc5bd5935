package defs

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownWave is returned when a wave table has nothing to offer.
var ErrUnknownWave = errors.New("no wave definition")

// Share of formation rows, from the top, drawn as C and B ships. The rest are A.
const (
	proportionC = 0.2
	proportionB = 0.4
)

// WaveDefinition describes the formation of a single wave.
type WaveDefinition struct {
	Number        int           `yaml:"number"`
	Columns       int           `yaml:"columns"`
	Rows          int           `yaml:"rows"`
	MoveInterval  time.Duration `yaml:"move_interval"`    // Time between formation steps
	ShootInterval time.Duration `yaml:"shoot_interval"`   // Mean time between enemy shots
	Layout        []SpriteType  `yaml:"layout,omitempty"` // Optional explicit row sprites, top first
}

// RowSprite returns the first animation frame for the given row (0 is the top).
func (w WaveDefinition) RowSprite(row int) SpriteType {
	if row < len(w.Layout) {
		return w.Layout[row]
	}
	ratio := float64(row) / float64(w.Rows)
	switch {
	case ratio < proportionC:
		return EnemyShipC1
	case ratio < proportionC+proportionB:
		return EnemyShipB1
	default:
		return EnemyShipA1
	}
}

// WaveTable maps a wave number to its definition.
type WaveTable map[int]WaveDefinition

// DefaultWaves is the built-in progression.
var DefaultWaves = WaveTable{
	1: {Number: 1, Columns: 5, Rows: 4, MoveInterval: 1000 * time.Millisecond, ShootInterval: 2000 * time.Millisecond},
	2: {Number: 2, Columns: 5, Rows: 5, MoveInterval: 850 * time.Millisecond, ShootInterval: 2500 * time.Millisecond},
	3: {Number: 3, Columns: 6, Rows: 5, MoveInterval: 700 * time.Millisecond, ShootInterval: 1500 * time.Millisecond},
	4: {Number: 4, Columns: 6, Rows: 6, MoveInterval: 550 * time.Millisecond, ShootInterval: 1500 * time.Millisecond},
	5: {Number: 5, Columns: 7, Rows: 6, MoveInterval: 400 * time.Millisecond, ShootInterval: 1000 * time.Millisecond},
	6: {Number: 6, Columns: 7, Rows: 7, MoveInterval: 250 * time.Millisecond, ShootInterval: 1000 * time.Millisecond},
	7: {Number: 7, Columns: 8, Rows: 7, MoveInterval: 100 * time.Millisecond, ShootInterval: 500 * time.Millisecond},
}

// For returns the definition for wave n. Once the table runs out the last
// three defined waves repeat in order.
func (t WaveTable) For(n int) (WaveDefinition, error) {
	if len(t) == 0 {
		return WaveDefinition{}, ErrUnknownWave
	}
	if def, ok := t[n]; ok {
		return def, nil
	}

	numbers := make([]int, 0, len(t))
	for k := range t {
		numbers = append(numbers, k)
	}
	sort.Ints(numbers)
	last := numbers[len(numbers)-1]
	if n < numbers[0] {
		def := t[numbers[0]]
		def.Number = n
		return def, nil
	}
	if n < last {
		// Gap in a sparse table: reuse the closest earlier wave.
		i := sort.SearchInts(numbers, n) - 1
		def := t[numbers[i]]
		def.Number = n
		return def, nil
	}

	span := 3
	if len(numbers) < span {
		span = len(numbers)
	}
	tail := numbers[len(numbers)-span:]
	def := t[tail[(n-last-1)%span]]
	def.Number = n
	return def, nil
}

// Validate checks that every wave can be laid out.
func (t WaveTable) Validate() error {
	for n, def := range t {
		if def.Columns <= 0 || def.Rows <= 0 {
			return fmt.Errorf("wave %d: formation must have at least one row and column", n)
		}
		if def.MoveInterval <= 0 {
			return fmt.Errorf("wave %d: move interval must be positive", n)
		}
		if def.ShootInterval <= 0 {
			return fmt.Errorf("wave %d: shoot interval must be positive", n)
		}
		for i, s := range def.Layout {
			if !IsEnemyFrame(s) {
				return fmt.Errorf("wave %d: layout row %d uses non-formation sprite %v", n, i, s)
			}
		}
	}
	return nil
}

// CheckShootingVariance rejects waves whose shoot interval could be drawn
// non-positive with the given variance.
func (t WaveTable) CheckShootingVariance(variance time.Duration) error {
	for n, def := range t {
		if variance >= def.ShootInterval {
			return fmt.Errorf("wave %d: shooting variance %v must be below the shoot interval %v", n, variance, def.ShootInterval)
		}
	}
	return nil
}
