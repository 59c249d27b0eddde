package median

// traverse drives a kernel-shaped window across the tile's interior
// [x0,x1]x[y0,y1] (tile-local coordinates), calling emit once per interior
// pixel with its median. It follows the serpentine path of spec.md §4.4:
// columns are visited left to right, and consecutive columns alternate
// sweep direction so that the row range carried from the end of one
// column's sweep is exactly the row range the next column's advance needs
// — no column is ever re-primed at y0.
func traverse[T Number](t *tile[T], hy, hx, x0, y0, x1, y1 int, emit func(x, y int, v T)) {
	// Prime step: insert the first column's kernel region except its
	// rightmost column, which the first column-advance below adds.
	for ix := x0 - hx; ix < x0+hx; ix++ {
		for jy := y0 - hy; jy <= y0+hy; jy++ {
			t.add(ix, jy)
		}
	}

	curY := y0
	for x := x0; x <= x1; x++ {
		// Column advance: slide the window one column right, at whatever
		// row the previous column's sweep left it on.
		for jy := curY - hy; jy <= curY+hy; jy++ {
			t.remove(x-hx-1, jy)
			t.add(x+hx, jy)
		}

		if (x-x0)%2 == 0 {
			// Downward sweep: y0 -> y1.
			for y := curY; ; {
				emit(x, y, t.median())
				if y == y1 {
					curY = y1
					break
				}
				for ix := x - hx; ix <= x+hx; ix++ {
					t.remove(ix, y-hy)
				}
				y++
				for ix := x - hx; ix <= x+hx; ix++ {
					t.add(ix, y+hy)
				}
			}
		} else {
			// Upward sweep: y1 -> y0.
			for y := curY; ; {
				emit(x, y, t.median())
				if y == y0 {
					curY = y0
					break
				}
				for ix := x - hx; ix <= x+hx; ix++ {
					t.remove(ix, y+hy)
				}
				y--
				for ix := x - hx; ix <= x+hx; ix++ {
					t.add(ix, y-hy)
				}
			}
		}
	}
}
