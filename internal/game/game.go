// Package game implements the turn-based session layer around the light
// engine: selection, movement, source toggling, and energy/life bookkeeping.
// It owns a board and a cached illumination state and runs the
// mutate -> recompute -> lock -> recompute edge after every player action.
package game

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/full-spectrum/internal/core"
)

// Config holds the session parameters.
type Config struct {
	EnergyMax int
	LivesMax  int
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		EnergyMax: 20,
		LivesMax:  3,
	}
}

// Outcome classifies the result of a player action.
type Outcome int

const (
	OutcomeOutOfBounds Outcome = iota
	OutcomeToggled
	OutcomeSelected
	OutcomeSelectionCleared
	OutcomeNothingSelected
	OutcomeSelectionStale
	OutcomeBlockedByBoundary
	OutcomeBlocked
	OutcomeMoved
	OutcomeReset
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOutOfBounds:
		return "out-of-bounds"
	case OutcomeToggled:
		return "toggled"
	case OutcomeSelected:
		return "selected"
	case OutcomeSelectionCleared:
		return "selection-cleared"
	case OutcomeNothingSelected:
		return "nothing-selected"
	case OutcomeSelectionStale:
		return "selection-stale"
	case OutcomeBlockedByBoundary:
		return "blocked-by-boundary"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeMoved:
		return "moved"
	case OutcomeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Mutated reports whether the action changed the board (and therefore ran
// the lock state machine).
func (o Outcome) Mutated() bool {
	return o == OutcomeToggled || o == OutcomeMoved || o == OutcomeReset
}

// ActionResult reports what a player action did.
type ActionResult struct {
	Outcome  Outcome
	LifeLost bool         // energy hit zero; a life was consumed and energy refilled
	Locked   []core.Coord // movable blocks frozen by this action, row-major
}

// Game is a single puzzle session. It is not safe for concurrent use; the
// caller serializes actions.
type Game struct {
	cfg      Config
	board    *core.Board
	start    *core.Board // pristine layout for Reset
	energy   int
	lives    int
	selected *core.Coord
	light    *core.Illumination
}

// New creates a session over the given board. The board is cloned; the
// caller's copy is never mutated. Illumination is computed immediately so
// the session is queryable before the first action.
func New(cfg Config, b *core.Board) (*Game, error) {
	if err := core.ValidateBoard(b); err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}
	if cfg.EnergyMax <= 0 || cfg.LivesMax <= 0 {
		return nil, fmt.Errorf("invalid config: energy %d, lives %d", cfg.EnergyMax, cfg.LivesMax)
	}

	board := b.Clone()
	return &Game{
		cfg:    cfg,
		board:  board,
		start:  b.Clone(),
		energy: cfg.EnergyMax,
		lives:  cfg.LivesMax,
		light:  core.Recompute(board),
	}, nil
}

// Board returns the live board. Collaborators may read it but must route
// mutations through the session.
func (g *Game) Board() *core.Board {
	return g.board
}

// Light returns the illumination state as of the last action.
func (g *Game) Light() *core.Illumination {
	return g.light
}

// Energy returns the remaining energy.
func (g *Game) Energy() int {
	return g.energy
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Selected returns the currently selected coordinate, or false.
func (g *Game) Selected() (core.Coord, bool) {
	if g.selected == nil {
		return core.Coord{}, false
	}
	return *g.selected, true
}

// IsLost reports whether the session has run out of lives.
func (g *Game) IsLost() bool {
	return g.lives <= 0
}

// Interact applies the primary action to a cell: toggles a source, selects
// a movable block or crystal, or clears the selection.
func (g *Game) Interact(c core.Coord) ActionResult {
	if !g.board.InBounds(c) {
		return ActionResult{Outcome: OutcomeOutOfBounds}
	}

	switch g.board.Get(c) {
	case core.SourceOff:
		g.board.Set(c, core.SourceOn)
		return g.afterChange(OutcomeToggled, g.spend(1))
	case core.SourceOn:
		g.board.Set(c, core.SourceOff)
		return g.afterChange(OutcomeToggled, g.spend(1))
	case core.BlockMovable, core.Crystal:
		sel := c
		g.selected = &sel
		return ActionResult{Outcome: OutcomeSelected}
	default:
		g.selected = nil
		return ActionResult{Outcome: OutcomeSelectionCleared}
	}
}

// MoveSelected moves the selected block or crystal one cell. Movables and
// crystals may only enter empty cells; anything else blocks the move.
// Selection follows the moved piece.
func (g *Game) MoveSelected(d core.Dir) ActionResult {
	if g.selected == nil {
		return ActionResult{Outcome: OutcomeNothingSelected}
	}

	from := *g.selected
	t := g.board.Get(from)
	if t != core.BlockMovable && t != core.Crystal {
		// The piece was locked or replaced since selection.
		g.selected = nil
		return ActionResult{Outcome: OutcomeSelectionStale}
	}

	to := from.Step(d)
	if !g.board.InBounds(to) {
		return ActionResult{Outcome: OutcomeBlockedByBoundary}
	}
	if g.board.Get(to) != core.Empty {
		return ActionResult{Outcome: OutcomeBlocked}
	}

	g.board.Set(to, t)
	g.board.Set(from, core.Empty)
	g.selected = &to
	return g.afterChange(OutcomeMoved, g.spend(1))
}

// Reset restores the pristine layout and refills energy. Lives are kept
// as-is so resetting is never a free heal.
func (g *Game) Reset() ActionResult {
	g.board = g.start.Clone()
	g.selected = nil
	g.energy = g.cfg.EnergyMax
	return g.afterChange(OutcomeReset, false)
}

// spend consumes energy. When energy reaches zero a life is lost and the
// energy refills.
func (g *Game) spend(cost int) (lifeLost bool) {
	g.energy -= cost
	if g.energy <= 0 {
		g.lives--
		g.energy = g.cfg.EnergyMax
		return true
	}
	return false
}

// afterChange runs the lock state machine after a board mutation and caches
// the resulting illumination.
func (g *Game) afterChange(outcome Outcome, lifeLost bool) ActionResult {
	light, locked := core.LockAndRecompute(g.board)
	g.light = light
	return ActionResult{
		Outcome:  outcome,
		LifeLost: lifeLost,
		Locked:   locked,
	}
}

// Snapshot returns a hash of the full session state, for regression scripts
// and change detection.
func (g *Game) Snapshot() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "B:%d;E:%d;L:%d;", g.board.Hash(), g.energy, g.lives)
	if g.selected != nil {
		fmt.Fprintf(h, "S:%s", *g.selected)
	}
	return h.Sum64()
}
