package render

import (
	"strings"

	"go-space-invaders/internal/defs"
)

// Bitmap is a monochrome sprite. Set cells are drawn in the entity's color.
type Bitmap struct {
	Width, Height int
	cells         []bool
}

// At reports whether cell (x, y) is set.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.cells[y*b.Width+x]
}

// Each calls fn for every set cell.
func (b *Bitmap) Each(fn func(x, y int)) {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.cells[y*b.Width+x] {
				fn(x, y)
			}
		}
	}
}

func parseBitmap(art string) *Bitmap {
	rows := strings.Split(strings.TrimSpace(art), "\n")
	b := &Bitmap{Width: len(rows[0]), Height: len(rows)}
	b.cells = make([]bool, b.Width*b.Height)
	for y, row := range rows {
		for x, ch := range row {
			b.cells[y*b.Width+x] = ch == '#'
		}
	}
	return b
}

var bitmaps = map[defs.SpriteType]*Bitmap{}

// SpriteBitmap returns the bitmap of a sprite type, nil for SpriteNone.
func SpriteBitmap(s defs.SpriteType) *Bitmap {
	return bitmaps[s]
}

func init() {
	for s, art := range spriteArt {
		bitmaps[s] = parseBitmap(art)
	}
}

var spriteArt = map[defs.SpriteType]string{
	defs.Ship: `
......#......
.....###.....
.....###.....
.###########.
#############
#############
#############
#############`,
	defs.ShipDestroyed: `
...#.....#...
#.....#......
..#.#...#..#.
.....#.#.....
..##########.
.############
#############
#############`,
	defs.Bullet: `
.#.
.#.
.#.
.#.
.#.`,
	defs.EnemyBullet: `
#..
.#.
..#
.#.
#..`,
	defs.EnemyShipA1: `
....####....
.##########.
############
###..##..###
############
...##..##...
..##.##.##..
##........##`,
	defs.EnemyShipA2: `
....####....
.##########.
############
###..##..###
############
..###..###..
.##..##..##.
..##....##..`,
	defs.EnemyShipB1: `
..#......#..
...#....#...
..########..
.##.####.##.
############
#.########.#
#.#......#.#
...##..##...`,
	defs.EnemyShipB2: `
..#......#..
#..#....#..#
#.########.#
###.####.###
############
.##########.
..#......#..
.#........#.`,
	defs.EnemyShipC1: `
.....##.....
....####....
...######...
..##.##.##..
..########..
....#..#....
...#.##.#...
..#.#..#.#..`,
	defs.EnemyShipC2: `
.....##.....
....####....
...######...
..##.##.##..
..########..
...#.##.#...
..#......#..
...#....#...`,
	defs.EnemyShipSpecial: `
.....######.....
...##########...
..############..
.##.##.##.##.##.
################
...###..###.....
....#......#....`,
	defs.Explosion: `
#..#...#..#..
.#..#.#..#...
..#.......#..
##.........##
..#.......#..
.#..#.#..#...
#..#...#..#..`,
}
