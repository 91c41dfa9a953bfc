package core

import "fmt"

// GenParams configures the board generator.
type GenParams struct {
	Width  int
	Height int
	Seed   uint64 // RNG seed for deterministic variety

	Sources  int     // total sources to place, at least 1
	OnRatio  float64 // probability a placed source starts ON
	Blocks   int     // movable blocks to place
	Crystals int     // crystals to place

	MaxAttempts int // retry limit for the calm-start constraint
}

// DefaultGenParams returns sensible defaults for board generation.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:       12,
		Height:      12,
		Seed:        0,
		Sources:     2,
		OnRatio:     0.5,
		Blocks:      6,
		Crystals:    1,
		MaxAttempts: 10,
	}
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &SimpleRNG{state: seed}
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *SimpleRNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// GenerateBoard generates a random board. The generated board guarantees:
//   - At least one source (it passes ValidateBoard)
//   - A calm start: no movable block sits in direct light of the initial
//     layout, so nothing locks before the player's first action
//
// Same params produce the same board. Returns an error when the pieces do
// not fit the board or no calm layout is found within MaxAttempts.
func GenerateBoard(p GenParams) (*Board, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", p.Width, p.Height)
	}
	if p.Sources < 1 {
		return nil, fmt.Errorf("at least one source required, got %d", p.Sources)
	}
	pieces := p.Sources + p.Blocks + p.Crystals
	if pieces > p.Width*p.Height {
		return nil, fmt.Errorf("%d pieces do not fit a %dx%d board", pieces, p.Width, p.Height)
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	rng := NewRNG(p.Seed)
	for attempt := 0; attempt < attempts; attempt++ {
		b := placeRandom(p, rng)
		if isCalmStart(b) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("no calm layout found in %d attempts", attempts)
}

// placeRandom scatters the requested pieces over empty cells.
func placeRandom(p GenParams, rng *SimpleRNG) *Board {
	b := NewBoard(p.Width, p.Height)

	place := func(t Tile) {
		for {
			c := C(rng.Intn(b.W), rng.Intn(b.H))
			if b.Get(c) == Empty {
				b.Set(c, t)
				return
			}
		}
	}

	for i := 0; i < p.Sources; i++ {
		kind := SourceOff
		if rng.Float() < p.OnRatio {
			kind = SourceOn
		}
		place(kind)
	}
	for i := 0; i < p.Blocks; i++ {
		place(BlockMovable)
	}
	for i := 0; i < p.Crystals; i++ {
		place(Crystal)
	}
	return b
}

// isCalmStart reports whether the initial illumination locks nothing.
func isCalmStart(b *Board) bool {
	il := Recompute(b)
	for _, c := range b.Find(BlockMovable) {
		if il.Direct[c] {
			return false
		}
	}
	return true
}
