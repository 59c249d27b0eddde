package median

// Images are addressed by global (x, y) with x the column, y the row, both
// 0-based. A rectangle is given by inclusive bounds [x0,x1] x [y0,y1].

// inflate grows an interior rectangle by the kernel half-extents (hx, hy)
// and clips the result to the image bounds [0,w) x [0,h). The result is the
// tile rectangle that owns that interior: it is wide/tall enough to hold
// every kernel cell any interior pixel's window could touch, except where
// the image edge cuts it short.
//
// That clipping is the whole of the boundary policy: a tile pixel that
// would fall outside the clipped rectangle is never added to the window in
// the first place, so output pixels near the image edge are medians of the
// kernel intersected with the image (a shrunken window), never a padded or
// reflected one.
func inflate(ix0, iy0, ix1, iy1, hx, hy, w, h int) (x0, y0, x1, y1 int) {
	x0 = ix0 - hx
	y0 = iy0 - hy
	x1 = ix1 + hx
	y1 = iy1 + hy
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w-1 {
		x1 = w - 1
	}
	if y1 > h-1 {
		y1 = h - 1
	}
	return
}
