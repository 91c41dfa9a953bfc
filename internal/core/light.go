package core

// LightClass distinguishes the two kinds of illumination.
type LightClass uint8

const (
	// LightDirect is un-scattered light. Direct light locks movable blocks.
	LightDirect LightClass = iota
	// LightScatter is post-intersection light. It never locks anything.
	LightScatter
)

// String returns the class name.
func (lc LightClass) String() string {
	if lc == LightDirect {
		return "direct"
	}
	return "scatter"
}

// MaxRefractionPasses bounds the crystal fixed-point loop. The lit sets only
// grow and are bounded by the board area, so the loop stabilizes in at most
// crystal-count+1 passes on well-formed levels; the cap guards against
// malformed ones.
const MaxRefractionPasses = 16

// Illumination holds the result of a full light recomputation. Direct and
// Scatter are independent sets; a coordinate may appear in both, in which
// case direct takes priority wherever a single classification is needed.
//
// An Illumination has no identity across board mutations: it is discarded
// and rebuilt wholesale by every Recompute.
type Illumination struct {
	Direct  map[Coord]bool
	Scatter map[Coord]bool

	// Passes is the number of refraction passes the fixed-point loop ran.
	Passes int
	// CapReached is true when the loop was cut by MaxRefractionPasses
	// before stabilizing. The result is still usable, just possibly
	// under-illuminated; callers should surface this for diagnostics.
	CapReached bool
}

// newIllumination returns an empty illumination state.
func newIllumination() *Illumination {
	return &Illumination{
		Direct:  make(map[Coord]bool),
		Scatter: make(map[Coord]bool),
	}
}

// Lit reports whether the coordinate carries any light.
func (il *Illumination) Lit(c Coord) bool {
	return il.Direct[c] || il.Scatter[c]
}

// Class returns the classification of a lit coordinate, direct taking
// priority. The second result is false for unlit coordinates.
func (il *Illumination) Class(c Coord) (LightClass, bool) {
	if il.Direct[c] {
		return LightDirect, true
	}
	if il.Scatter[c] {
		return LightScatter, true
	}
	return LightScatter, false
}

// set returns the destination set for a class.
func (il *Illumination) set(class LightClass) map[Coord]bool {
	if class == LightDirect {
		return il.Direct
	}
	return il.Scatter
}

// beamLedger records, per coordinate, the directions of direct source beams
// that passed through it. It only exists while Recompute runs.
type beamLedger map[Coord]map[Dir]bool

func (bl beamLedger) add(c Coord, d Dir) {
	dirs, ok := bl[c]
	if !ok {
		dirs = make(map[Dir]bool)
		bl[c] = dirs
	}
	dirs[d] = true
}

// Recompute derives the full illumination state of a board from scratch:
// direct beams from every ON source, scattering at direct-beam
// intersections, then crystal refraction iterated to a fixed point.
// The board is not mutated. For a fixed board the result is always
// identical: casts only ever add coordinates to monotonically growing sets,
// so iteration order cannot change the outcome.
func Recompute(b *Board) *Illumination {
	il := newIllumination()

	// Direct beams from all ON sources, in all four directions, starting
	// strictly after the source cell. The ledger is populated as a side
	// effect of these casts and of no others.
	beams := make(beamLedger)
	for _, src := range b.Find(SourceOn) {
		for _, d := range Directions {
			il.castSourceBeam(b, src, d, beams)
		}
	}

	il.applyScattering(b, beams)
	il.refract(b)

	return il
}

// LockAndRecompute runs the full state-machine edge for a board mutation:
// recompute illumination, convert every direct-lit movable block to
// immovable, then recompute once more so beams account for the new
// obstacles. It returns the post-lock illumination and the locked
// coordinates in row-major order. Locking is applied exactly once; the
// second recompute never feeds a further lock pass.
func LockAndRecompute(b *Board) (*Illumination, []Coord) {
	il := Recompute(b)

	locked := make([]Coord, 0)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := C(x, y)
			if il.Direct[c] && b.Get(c) == BlockMovable {
				b.Set(c, BlockImmovable)
				locked = append(locked, c)
			}
		}
	}

	return Recompute(b), locked
}

// castSourceBeam walks a direct beam from a source. Block cells are lit and
// terminate the beam; every other tile is lit and transparent (sources and
// crystals never block a transiting beam). Non-block cells are also recorded
// in the ledger for intersection resolution.
func (il *Illumination) castSourceBeam(b *Board, origin Coord, d Dir, beams beamLedger) {
	for _, c := range b.Line(origin, d) {
		if b.Get(c).IsBlock() {
			// The block itself registers as lit, which is what makes
			// the lock transition reachable.
			il.Direct[c] = true
			return
		}
		il.Direct[c] = true
		beams.add(c, d)
	}
}

// applyScattering degrades beams beyond crossings: any cell traversed by
// direct beams from two or more distinct directions re-emits each of those
// directions as scatter from that cell on. The crossing cell itself stays
// direct. This is a single pass over the ledger; crossings created later by
// refracted beams are never revisited.
func (il *Illumination) applyScattering(b *Board, beams beamLedger) {
	for c, dirs := range beams {
		if len(dirs) < 2 {
			continue
		}
		for _, d := range Directions {
			if dirs[d] {
				il.cast(b, c, d, LightScatter)
			}
		}
	}
}

// refract runs the crystal fixed-point loop: every lit crystal re-emits in
// all four directions, with class priority to direct, until a pass adds no
// new coordinate or the pass cap cuts it.
func (il *Illumination) refract(b *Board) {
	changed := true
	for changed && il.Passes < MaxRefractionPasses {
		il.Passes++
		changed = il.refractPass(b)
	}
	// Exiting with changed still true means the cap cut the loop.
	il.CapReached = changed
}

// refractPass emits one round of crystal beams. Which crystals emit is
// decided against a snapshot of the lit set taken at the top of the pass;
// light a crystal gains mid-pass makes it emit on the next pass.
// Returns true if any cast added a previously absent coordinate.
func (il *Illumination) refractPass(b *Board) bool {
	crystals := b.Find(Crystal)
	litNow := make([]bool, 0, len(crystals))
	for _, c := range crystals {
		litNow = append(litNow, il.Lit(c))
	}

	changed := false
	for i, c := range crystals {
		if !litNow[i] {
			continue
		}
		class := LightScatter
		if il.Direct[c] {
			class = LightDirect
		}
		// All four directions deliberately include the way back toward
		// whatever lit the crystal; the over-illumination is part of the
		// puzzle semantics.
		for _, d := range Directions {
			if il.cast(b, c, d, class) {
				changed = true
			}
		}
	}
	return changed
}

// cast walks a beam of the given class from origin, adding every traversed
// cell to the class's set. Blocks are added and stop the walk. Returns true
// if any coordinate was newly added.
func (il *Illumination) cast(b *Board, origin Coord, d Dir, class LightClass) bool {
	dst := il.set(class)
	changed := false
	for _, c := range b.Line(origin, d) {
		if !dst[c] {
			changed = true
			dst[c] = true
		}
		if b.Get(c).IsBlock() {
			return changed
		}
	}
	return changed
}
