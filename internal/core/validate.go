package core

import "fmt"

// ValidationError contains details about a level validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateBoard performs sanity checks on an authored board.
// Checks:
//   - Board has positive dimensions
//   - At least one source exists (a level without sources can never light up)
func ValidateBoard(b *Board) error {
	if b == nil || b.W <= 0 || b.H <= 0 || len(b.Tiles) != b.W*b.H {
		return ValidationError{
			Code:    "EMPTY_BOARD",
			Message: "board is nil, empty, or inconsistently sized",
		}
	}

	hasSource := false
	for _, t := range b.Tiles {
		if t.IsSource() {
			hasSource = true
			break
		}
	}
	if !hasSource {
		return ValidationError{
			Code:    "NO_SOURCE",
			Message: "board has no light source, on or off",
		}
	}

	return nil
}

// BoardStats summarizes a board for reporting.
type BoardStats struct {
	Width         int
	Height        int
	TotalCells    int
	TileCounts    map[Tile]int
	Sources       int // on + off
	SourcesOn     int
	Crystals      int
	MovableBlocks int
}

// ComputeBoardStats analyzes a board and returns statistics.
func ComputeBoardStats(b *Board) BoardStats {
	counts := make(map[Tile]int)
	for _, t := range b.Tiles {
		counts[t]++
	}

	return BoardStats{
		Width:         b.W,
		Height:        b.H,
		TotalCells:    b.W * b.H,
		TileCounts:    counts,
		Sources:       counts[SourceOn] + counts[SourceOff],
		SourcesOn:     counts[SourceOn],
		Crystals:      counts[Crystal],
		MovableBlocks: counts[BlockMovable],
	}
}
