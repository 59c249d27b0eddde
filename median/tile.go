package median

import "sort"

// Number is the set of pixel scalar types the engine supports.
type Number interface {
	~float32 | ~uint8
}

// tile owns one tile's geometry, its rank/value tables, and the bitmap
// index tracking which ranks currently lie inside the kernel window. It is
// constructed once per tile and mutated only through add/remove/median for
// the lifetime of one window traversal.
type tile[T Number] struct {
	bx, by int // tile width/height, local coordinate bounds
	ranks  []int
	values []T // values[rank] = tile pixel value at that rank, ascending
	bitmap bitmapIndex
	avg    func(a, b T) T
}

// newTile sorts the tile's bx*by pixels (read from img at rowStride with
// the tile's top-left at (x0b,y0b)) and builds the rank/value tables.
// Ties are broken by tile-local row-major index, giving a deterministic,
// stable rank assignment as required by spec.md §4.2.
func newTile[T Number](img []T, rowStride, x0b, y0b, bx, by int, avg func(a, b T) T) *tile[T] {
	n := bx * by
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	vals := make([]T, n)
	for jy := 0; jy < by; jy++ {
		base := (y0b+jy)*rowStride + x0b
		row := jy * bx
		for ix := 0; ix < bx; ix++ {
			vals[row+ix] = img[base+ix]
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return vals[idx[a]] < vals[idx[b]]
	})

	values := make([]T, n)
	ranks := make([]int, n)
	for rank, localIdx := range idx {
		values[rank] = vals[localIdx]
		ranks[localIdx] = rank
	}

	return &tile[T]{
		bx:     bx,
		by:     by,
		ranks:  ranks,
		values: values,
		bitmap: newBitmapIndex(n),
		avg:    avg,
	}
}

// add inserts the tile pixel at local coordinates (ix,jy) into the window.
// Coordinates outside [0,bx)x[0,by) are outside the tile (the kernel
// extends past the image edge) and are silently dropped, per spec.md §4.3.
func (t *tile[T]) add(ix, jy int) {
	if ix < 0 || ix >= t.bx || jy < 0 || jy >= t.by {
		return
	}
	t.bitmap.toggleAdd(t.ranks[jy*t.bx+ix])
}

// remove is the symmetric counterpart of add.
func (t *tile[T]) remove(ix, jy int) {
	if ix < 0 || ix >= t.bx || jy < 0 || jy >= t.by {
		return
	}
	t.bitmap.toggleRemove(t.ranks[jy*t.bx+ix])
}

// median returns the median of the pixels currently inside the window.
// The window must be non-empty; an empty window is a caller error (spec.md
// §4.3 states s=0 must not arise under the traversal in §4.4).
func (t *tile[T]) median() T {
	s := t.bitmap.cardinality()
	r1 := t.bitmap.selectBit((s - 1) / 2)
	if s%2 == 1 {
		return t.values[r1]
	}
	r2 := t.bitmap.selectBit(s / 2)
	return t.avg(t.values[r1], t.values[r2])
}
