package core

import "testing"

func sameSet(a, b map[Coord]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if !b[c] {
			return false
		}
	}
	return true
}

func coordSet(coords ...Coord) map[Coord]bool {
	set := make(map[Coord]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func copySet(s map[Coord]bool) map[Coord]bool {
	out := make(map[Coord]bool, len(s))
	for c := range s {
		out[c] = true
	}
	return out
}

// Scenario: a single ON source on an otherwise empty board lights its full
// row and column, excluding its own cell, with no scatter.
func TestRecomputeSingleSource(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(C(0, 2), SourceOn)

	il := Recompute(b)

	wantDirect := coordSet(
		C(1, 2), C(2, 2), C(3, 2), C(4, 2), // row, rightward
		C(0, 1), C(0, 0), // column, upward
		C(0, 3), C(0, 4), // column, downward
	)
	if !sameSet(il.Direct, wantDirect) {
		t.Errorf("direct = %v, expected %v", il.Direct, wantDirect)
	}
	if len(il.Scatter) != 0 {
		t.Errorf("expected empty scatter, got %v", il.Scatter)
	}
	if il.Direct[C(0, 2)] {
		t.Error("a source cell must not be lit by its own beam")
	}
	if il.CapReached {
		t.Error("cap must not be reached without crystals")
	}
}

func TestRecomputeOffSourceEmitsNothing(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(C(2, 2), SourceOff)

	il := Recompute(b)
	if len(il.Direct) != 0 || len(il.Scatter) != 0 {
		t.Errorf("OFF source must emit nothing, got direct %v scatter %v", il.Direct, il.Scatter)
	}
}

// Scenario: two sources facing each other across a row. Every cell between
// them carries two direct directions in the ledger, and the continuations of
// those crossings land in scatter while the cells themselves stay direct.
func TestRecomputeFacingSourcesScatter(t *testing.T) {
	b := NewBoard(7, 1)
	b.Set(C(0, 0), SourceOn)
	b.Set(C(6, 0), SourceOn)

	// White-box: replay the source casts to inspect the transient ledger.
	il := newIllumination()
	beams := make(beamLedger)
	for _, src := range b.Find(SourceOn) {
		for _, d := range Directions {
			il.castSourceBeam(b, src, d, beams)
		}
	}
	mid := C(3, 0)
	if len(beams[mid]) < 2 {
		t.Fatalf("expected >=2 directions at the meeting cell, got %v", beams[mid])
	}

	il = Recompute(b)
	if !il.Direct[mid] {
		t.Error("the crossing cell itself stays direct")
	}
	// Beyond the crossing, in both original directions, the light is
	// (also) scatter.
	for _, c := range []Coord{C(4, 0), C(5, 0), C(2, 0), C(1, 0)} {
		if !il.Scatter[c] {
			t.Errorf("expected %v in scatter beyond the crossing", c)
		}
	}
	// The sets are independent: overlap is allowed and expected here.
	if !il.Direct[C(4, 0)] {
		t.Error("scatter must not remove direct membership")
	}
}

// Scenario: a crystal touched by a direct beam re-emits direct light in all
// four directions, including back toward the source.
func TestRefractionDirectCrystal(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(C(0, 2), SourceOn)
	b.Set(C(2, 2), Crystal)

	il := Recompute(b)

	if !il.Direct[C(2, 2)] {
		t.Fatal("crystal cell must be directly lit")
	}
	// Crystal column, both ways.
	for _, c := range []Coord{C(2, 0), C(2, 1), C(2, 3), C(2, 4)} {
		if !il.Direct[c] {
			t.Errorf("expected crystal emission at %v in direct", c)
		}
	}
	// Back-emission reaches the source cell; accepted over-illumination.
	if !il.Direct[C(0, 2)] {
		t.Error("expected back-emission to light the source cell")
	}
	if len(il.Scatter) != 0 {
		t.Errorf("expected empty scatter, got %v", il.Scatter)
	}
	if il.CapReached {
		t.Error("cap must not be reached for a single crystal")
	}
}

// A scatter-only crystal emits scatter. Scatter never exceeds direct when
// produced by intersections alone, so this exercises the class-priority rule
// directly against a refraction pass.
func TestRefractPassScatterCrystal(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(C(2, 2), Crystal)

	il := newIllumination()
	il.Scatter[C(2, 2)] = true

	if !il.refractPass(b) {
		t.Fatal("expected the pass to add coordinates")
	}
	for _, c := range []Coord{C(2, 0), C(0, 2), C(4, 2), C(2, 4)} {
		if !il.Scatter[c] {
			t.Errorf("expected scatter emission at %v", c)
		}
		if il.Direct[c] {
			t.Errorf("scatter crystal must not emit direct light, got direct at %v", c)
		}
	}
}

// Refraction only adds coordinates: across successive passes on a crystal
// chain, each pass's sets are supersets of the previous pass's, and the pass
// that reports no change leaves the sets untouched.
func TestRefractionGrowsMonotonically(t *testing.T) {
	b := NewBoard(7, 7)
	b.Set(C(0, 0), SourceOn)
	b.Set(C(3, 0), Crystal)
	b.Set(C(3, 4), Crystal)
	b.Set(C(6, 4), Crystal)

	// Seed the pre-refraction state the way Recompute does.
	il := newIllumination()
	beams := make(beamLedger)
	for _, src := range b.Find(SourceOn) {
		for _, d := range Directions {
			il.castSourceBeam(b, src, d, beams)
		}
	}
	il.applyScattering(b, beams)

	for pass := 1; pass <= MaxRefractionPasses; pass++ {
		prevDirect := copySet(il.Direct)
		prevScatter := copySet(il.Scatter)

		changed := il.refractPass(b)

		for c := range prevDirect {
			if !il.Direct[c] {
				t.Fatalf("pass %d removed %v from direct", pass, c)
			}
		}
		for c := range prevScatter {
			if !il.Scatter[c] {
				t.Fatalf("pass %d removed %v from scatter", pass, c)
			}
		}
		if !changed {
			if len(il.Direct) != len(prevDirect) || len(il.Scatter) != len(prevScatter) {
				t.Fatal("a no-change pass must leave the sets untouched")
			}
			return
		}
	}
	t.Fatal("no fixed point within the pass cap")
}

func TestIlluminationClassPriority(t *testing.T) {
	il := newIllumination()
	il.Direct[C(1, 0)] = true
	il.Scatter[C(1, 0)] = true
	il.Scatter[C(2, 0)] = true

	if class, ok := il.Class(C(1, 0)); !ok || class != LightDirect {
		t.Errorf("Class at an overlap = %v/%v, expected direct", class, ok)
	}
	if class, ok := il.Class(C(2, 0)); !ok || class != LightScatter {
		t.Errorf("Class at scatter-only = %v/%v, expected scatter", class, ok)
	}
	if _, ok := il.Class(C(3, 0)); ok {
		t.Error("Class at an unlit cell must report false")
	}
}

// Chained crystals stabilize in at most crystal-count+1 passes.
func TestRefractionChainTerminates(t *testing.T) {
	b := NewBoard(7, 7)
	b.Set(C(0, 0), SourceOn)
	b.Set(C(3, 0), Crystal) // on the source row
	b.Set(C(3, 4), Crystal) // on the first crystal's column only

	il := Recompute(b)

	if !il.Direct[C(3, 4)] {
		t.Error("second crystal must be lit through the first")
	}
	if !il.Direct[C(6, 4)] {
		t.Error("second crystal must emit along its own row")
	}
	crystals := b.Count(Crystal)
	if il.Passes > crystals+1 {
		t.Errorf("took %d passes, expected at most %d", il.Passes, crystals+1)
	}
	if il.CapReached {
		t.Error("cap must not be reached for an acyclic chain")
	}
}

func TestBeamStopsAtBlock(t *testing.T) {
	for _, kind := range []Tile{BlockMovable, BlockImmovable} {
		b := NewBoard(5, 1)
		b.Set(C(0, 0), SourceOn)
		b.Set(C(2, 0), kind)

		il := Recompute(b)

		if !il.Direct[C(2, 0)] {
			t.Errorf("%v cell itself must be lit", kind)
		}
		for _, c := range []Coord{C(3, 0), C(4, 0)} {
			if il.Lit(c) {
				t.Errorf("no light may pass a %v, but %v is lit", kind, c)
			}
		}
	}
}

func TestBeamPassesThroughSources(t *testing.T) {
	b := NewBoard(5, 1)
	b.Set(C(0, 0), SourceOn)
	b.Set(C(2, 0), SourceOff)

	il := Recompute(b)

	for _, c := range []Coord{C(1, 0), C(2, 0), C(3, 0), C(4, 0)} {
		if !il.Direct[c] {
			t.Errorf("expected %v lit; sources are transparent to transiting beams", c)
		}
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	b, err := NewBoardFromRows([]string{
		"s....",
		"..C..",
		".b.s.",
		"....B",
		"C....",
	})
	if err != nil {
		t.Fatalf("NewBoardFromRows: %v", err)
	}

	first := Recompute(b)
	second := Recompute(b)

	if !sameSet(first.Direct, second.Direct) {
		t.Error("direct sets differ between recomputes of an unchanged board")
	}
	if !sameSet(first.Scatter, second.Scatter) {
		t.Error("scatter sets differ between recomputes of an unchanged board")
	}
	if first.Passes != second.Passes {
		t.Errorf("pass counts differ: %d vs %d", first.Passes, second.Passes)
	}
}

// Scenario: a movable block directly in front of a source locks and keeps
// blocking; re-locking changes nothing.
func TestLockAndRecompute(t *testing.T) {
	b := NewBoard(5, 5)
	b.Set(C(1, 2), SourceOn)
	b.Set(C(2, 2), BlockMovable)

	il, locked := LockAndRecompute(b)

	if len(locked) != 1 || locked[0] != C(2, 2) {
		t.Fatalf("locked = %v, expected [(2,2)]", locked)
	}
	if b.Get(C(2, 2)) != BlockImmovable {
		t.Errorf("block kind = %v, expected BlockImmovable", b.Get(C(2, 2)))
	}
	if !il.Direct[C(2, 2)] {
		t.Error("locked block cell must stay lit")
	}
	for _, c := range []Coord{C(3, 2), C(4, 2)} {
		if il.Lit(c) {
			t.Errorf("beam must not extend past the locked block, but %v is lit", c)
		}
	}

	// Lock is one-way: a second transition finds nothing to lock.
	il2, locked2 := LockAndRecompute(b)
	if len(locked2) != 0 {
		t.Errorf("second lock pass locked %v, expected nothing", locked2)
	}
	if b.Get(C(2, 2)) != BlockImmovable {
		t.Error("immovable block must never revert")
	}
	if !sameSet(il.Direct, il2.Direct) || !sameSet(il.Scatter, il2.Scatter) {
		t.Error("illumination changed across a no-op lock transition")
	}
}

func TestLockIgnoresScatterLitBlocks(t *testing.T) {
	// A block beyond a crossing: reached by the beams directly too, so to
	// isolate scatter, seed the state by hand and run a refraction pass
	// through a scatter crystal aimed at the block.
	b := NewBoard(5, 1)
	b.Set(C(1, 0), Crystal)
	b.Set(C(3, 0), BlockMovable)

	il := newIllumination()
	il.Scatter[C(1, 0)] = true
	il.refractPass(b)

	if !il.Scatter[C(3, 0)] {
		t.Fatal("expected the block to be scatter-lit")
	}
	// Only direct light locks; scatter leaves the board alone. Recompute on
	// the real board has no sources, so LockAndRecompute locks nothing.
	_, locked := LockAndRecompute(b)
	if len(locked) != 0 {
		t.Errorf("scatter light must not lock blocks, locked %v", locked)
	}
	if b.Get(C(3, 0)) != BlockMovable {
		t.Error("block must stay movable")
	}
}
