// Package core provides the board and light-propagation engine for the
// Full Spectrum puzzle. This package is UI-agnostic and deterministic.
package core

// Dir represents one of the four orthogonal beam directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists all four directions in a fixed order.
// Source emission and crystal re-emission iterate this slice.
var Directions = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// ParseDir parses a lowercase direction name ("up", "down", "left", "right").
func ParseDir(s string) (Dir, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "right":
		return DirRight, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	default:
		return DirUp, false
	}
}

// Tile is the kind of a single board cell. Exactly six kinds take part in
// the simulation; anything cosmetic (energy pips, light overlays) lives in
// presentation code and never appears on a Board.
type Tile uint8

const (
	Empty Tile = iota
	BlockMovable
	BlockImmovable
	SourceOn
	SourceOff
	Crystal
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case BlockMovable:
		return "BlockMovable"
	case BlockImmovable:
		return "BlockImmovable"
	case SourceOn:
		return "SourceOn"
	case SourceOff:
		return "SourceOff"
	case Crystal:
		return "Crystal"
	default:
		return "Unknown"
	}
}

// Glyph returns the single-character level-file representation of the tile.
func (t Tile) Glyph() byte {
	switch t {
	case Empty:
		return '.'
	case BlockMovable:
		return 'b'
	case BlockImmovable:
		return 'B'
	case SourceOn:
		return 's'
	case SourceOff:
		return 'S'
	case Crystal:
		return 'C'
	default:
		return '?'
	}
}

// ParseGlyph maps a level-file character to a tile.
func ParseGlyph(c byte) (Tile, bool) {
	switch c {
	case '.':
		return Empty, true
	case 'b':
		return BlockMovable, true
	case 'B':
		return BlockImmovable, true
	case 's':
		return SourceOn, true
	case 'S':
		return SourceOff, true
	case 'C':
		return Crystal, true
	default:
		return Empty, false
	}
}

// IsBlock reports whether the tile stops a beam. Movable and immovable
// blocks behave identically for casting.
func (t Tile) IsBlock() bool {
	return t == BlockMovable || t == BlockImmovable
}

// IsSource reports whether the tile is a light source, on or off.
func (t Tile) IsSource() bool {
	return t == SourceOn || t == SourceOff
}
