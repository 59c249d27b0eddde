package median

import (
	"math/bits"
	"testing"
)

func TestBitmapAddRemoveRoundTrip(t *testing.T) {
	b := newBitmapIndex(200)
	ranks := []int{3, 17, 64, 65, 127, 199, 0}

	for _, r := range ranks {
		b.toggleAdd(r)
	}
	if got := b.cardinality(); got != len(ranks) {
		t.Fatalf("cardinality after adds = %d, want %d", got, len(ranks))
	}
	for _, r := range ranks {
		b.toggleRemove(r)
	}
	if got := b.cardinality(); got != 0 {
		t.Fatalf("cardinality after removes = %d, want 0", got)
	}
	for _, w := range b.words {
		if w != 0 {
			t.Fatalf("expected all-zero bitmap, found word %#x", w)
		}
	}
	if b.psum != [2]int{0, 0} {
		t.Fatalf("psum after round trip = %v, want (0,0)", b.psum)
	}
}

func TestBitmapPsumInvariant(t *testing.T) {
	b := newBitmapIndex(300)
	for _, r := range []int{5, 70, 130, 250, 299} {
		b.toggleAdd(r)
	}
	want := 0
	for i := 0; i < b.p; i++ {
		want += bits.OnesCount64(b.words[i])
	}
	if b.psum[0] != want {
		t.Fatalf("psum[0] = %d, want %d", b.psum[0], want)
	}
	total := bits.OnesCount64(0)
	for _, w := range b.words {
		total += bits.OnesCount64(w)
	}
	if total != b.cardinality() {
		t.Fatalf("popcount(bitmap) = %d, want cardinality() = %d", total, b.cardinality())
	}
}

func TestBitmapSelect(t *testing.T) {
	b := newBitmapIndex(128)
	set := []int{2, 9, 40, 63, 64, 100, 127}
	for _, r := range set {
		b.toggleAdd(r)
	}
	for k, want := range set {
		if got := b.selectBit(k); got != want {
			t.Fatalf("selectBit(%d) = %d, want %d", k, got, want)
		}
	}
}

func TestBitmapSelectTracksMovingWindow(t *testing.T) {
	b := newBitmapIndex(128)
	for r := 0; r < 10; r++ {
		b.toggleAdd(r)
	}
	if got := b.selectBit(9); got != 9 {
		t.Fatalf("selectBit(9) = %d, want 9", got)
	}
	// Slide the window up by one: drop 0, add 10.
	b.toggleRemove(0)
	b.toggleAdd(10)
	if got := b.selectBit(9); got != 10 {
		t.Fatalf("selectBit(9) after slide = %d, want 10", got)
	}
	if got := b.selectBit(0); got != 1 {
		t.Fatalf("selectBit(0) after slide = %d, want 1", got)
	}
}

func TestNthSetBit(t *testing.T) {
	w := uint64(0b1011010)
	// set bits at 1, 3, 4, 6
	cases := []struct {
		n, want int
	}{
		{0, 1},
		{1, 3},
		{2, 4},
		{3, 6},
	}
	for _, c := range cases {
		if got := nthSetBit(w, c.n); got != c.want {
			t.Fatalf("nthSetBit(%b, %d) = %d, want %d", w, c.n, got, c.want)
		}
	}
}
