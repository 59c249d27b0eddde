package median

import "testing"

func TestTileRankTableIsPermutation(t *testing.T) {
	img := []float32{9, 1, 5, 3, 1, 8, 2, 7, 0}
	tl := newTile(img, 3, 0, 0, 3, 3, avgFloat32)

	seen := make([]bool, len(tl.ranks))
	for _, r := range tl.ranks {
		if r < 0 || r >= len(seen) {
			t.Fatalf("rank %d out of range", r)
		}
		if seen[r] {
			t.Fatalf("rank %d assigned more than once", r)
		}
		seen[r] = true
	}
}

func TestTileStableTieBreak(t *testing.T) {
	// Two equal values at tile-local indices 1 and 3; index 1 must sort first.
	img := []float32{5, 3, 5, 3}
	tl := newTile(img, 2, 0, 0, 2, 2, avgFloat32)

	if tl.ranks[1] > tl.ranks[3] {
		t.Fatalf("stable tie-break violated: rank[1]=%d rank[3]=%d", tl.ranks[1], tl.ranks[3])
	}
	if tl.ranks[0] > tl.ranks[2] {
		t.Fatalf("stable tie-break violated: rank[0]=%d rank[2]=%d", tl.ranks[0], tl.ranks[2])
	}
}

func TestTileAddRemoveMedian(t *testing.T) {
	img := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tl := newTile(img, 3, 0, 0, 3, 3, avgFloat32)

	for jy := 0; jy < 3; jy++ {
		for ix := 0; ix < 3; ix++ {
			tl.add(ix, jy)
		}
	}
	if got := tl.median(); got != 5 {
		t.Fatalf("median of full 3x3 = %v, want 5", got)
	}

	tl.remove(2, 2) // drop value 9
	if got := tl.median(); got != 4.5 {
		t.Fatalf("median after dropping max = %v, want 4.5", got)
	}
}

func TestTileOutOfBoundsIsNoop(t *testing.T) {
	img := []float32{1, 2, 3, 4}
	tl := newTile(img, 2, 0, 0, 2, 2, avgFloat32)

	before := tl.bitmap.cardinality()
	tl.add(-1, 0)
	tl.add(5, 5)
	tl.remove(-1, -1)
	if got := tl.bitmap.cardinality(); got != before {
		t.Fatalf("out-of-bounds add/remove changed cardinality: %d -> %d", before, got)
	}
}

func TestTileUint8RoundHalfUp(t *testing.T) {
	img := []uint8{1, 2}
	tl := newTile(img, 2, 0, 0, 2, 1, avgUint8)
	tl.add(0, 0)
	tl.add(1, 0)
	if got := tl.median(); got != 2 {
		t.Fatalf("round-half-up median of (1,2) = %d, want 2", got)
	}
}
