package core

import (
	"fmt"
	"hash/fnv"
)

// Board represents the puzzle board as a rectangular grid of tiles.
// Tiles are stored in row-major order: index = y*W + x.
//
// Unlike a rendering surface, the board never clamps: Get and Set panic on
// out-of-range coordinates. All engine iteration is bounds-checked, so an
// out-of-range access can only come from caller misuse and fails fast.
type Board struct {
	W     int    // Width of the board
	H     int    // Height of the board
	Tiles []Tile // Flat array of tiles, length W*H
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: invalid board size %dx%d", w, h))
	}
	return &Board{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

// NewBoardFromRows builds a board from glyph rows (the level-file layout).
// All rows must have equal length and contain only known glyphs.
func NewBoardFromRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	w := len(rows[0])
	if w == 0 {
		return nil, fmt.Errorf("empty first row")
	}
	b := NewBoard(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has length %d, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			t, ok := ParseGlyph(row[x])
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", y, x, row[x])
			}
			b.Tiles[y*w+x] = t
		}
	}
	return b, nil
}

// index converts a coordinate to a flat array index, panicking if the
// coordinate is out of range.
func (b *Board) index(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("core: coordinate %s out of bounds for %dx%d board", c, b.W, b.H))
	}
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board boundaries.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Get returns the tile at the given coordinate.
// Panics if the coordinate is out of range; callers check InBounds first.
func (b *Board) Get(c Coord) Tile {
	return b.Tiles[b.index(c)]
}

// Set places a tile at the given coordinate.
// Panics if the coordinate is out of range; callers check InBounds first.
func (b *Board) Set(c Coord, t Tile) {
	b.Tiles[b.index(c)] = t
}

// Line returns the ordered in-range coordinates strictly beyond origin,
// stepping one cell at a time in the given direction until the board edge.
// Each call builds a fresh slice, so concurrent walks never share a cursor.
func (b *Board) Line(origin Coord, d Dir) []Coord {
	line := make([]Coord, 0)
	for c := origin.Step(d); b.InBounds(c); c = c.Step(d) {
		line = append(line, c)
	}
	return line
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	return &Board{
		W:     b.W,
		H:     b.H,
		Tiles: tiles,
	}
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, t := range b.Tiles {
		if t != other.Tiles[i] {
			return false
		}
	}
	return true
}

// Find returns all coordinates holding the given tile, in row-major order.
func (b *Board) Find(t Tile) []Coord {
	coords := make([]Coord, 0)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.Tiles[y*b.W+x] == t {
				coords = append(coords, C(x, y))
			}
		}
	}
	return coords
}

// Count returns the number of cells holding the given tile.
func (b *Board) Count(t Tile) int {
	count := 0
	for _, tile := range b.Tiles {
		if tile == t {
			count++
		}
	}
	return count
}

// Hash returns a hash of the board contents, for snapshots and regression
// scripts.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d:", b.W, b.H)
	for _, t := range b.Tiles {
		h.Write([]byte{byte(t)})
	}
	return h.Sum64()
}

// Rows returns the board as glyph rows, the inverse of NewBoardFromRows.
func (b *Board) Rows() []string {
	rows := make([]string, b.H)
	for y := 0; y < b.H; y++ {
		row := make([]byte, b.W)
		for x := 0; x < b.W; x++ {
			row[x] = b.Tiles[y*b.W+x].Glyph()
		}
		rows[y] = string(row)
	}
	return rows
}
