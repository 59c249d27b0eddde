package refimpl

// histogramWindow tracks the population of 8-bit values inside the current
// kernel window as a 256-bin histogram, giving an O(256) median query
// without ever sorting. It trades the rank-bitmap engine's generality
// (arbitrary scalar types, windows far larger than 256) for a simpler
// per-pixel update when the domain is known to be 8-bit.
type histogramWindow struct {
	bins [256]int
	size int
}

func (h *histogramWindow) add(v uint8) {
	h.bins[v]++
	h.size++
}

func (h *histogramWindow) remove(v uint8) {
	h.bins[v]--
	h.size--
}

func (h *histogramWindow) clear() {
	h.bins = [256]int{}
	h.size = 0
}

func (h *histogramWindow) median() uint8 {
	if h.size == 0 {
		return 0
	}
	if h.size%2 == 1 {
		target := h.size / 2
		count := 0
		for i := 0; i < 256; i++ {
			count += h.bins[i]
			if count > target {
				return uint8(i)
			}
		}
		return 0
	}

	target1 := h.size/2 - 1
	target2 := h.size / 2
	count := 0
	val1, val2 := -1, -1
	for i := 0; i < 256; i++ {
		next := count + h.bins[i]
		if val1 == -1 && next > target1 {
			val1 = i
		}
		if val2 == -1 && next > target2 {
			val2 = i
			break
		}
		count = next
	}
	return uint8((val1 + val2 + 1) / 2)
}

// HistogramUint8 is the histogram-window alternative to the rank-bitmap
// engine for 8-bit images: a row-wise sliding window that adds/removes one
// column at a time, re-deriving the median from the histogram at every
// pixel instead of tracking a running pivot.
func HistogramUint8(input, output []uint8, h, w, hy, hx int) {
	var hist histogramWindow

	for y := 0; y < h; y++ {
		hist.clear()
		y0, y1 := clampLo(y-hy), clampHi(y+hy, h-1)

		for dy := y0; dy <= y1; dy++ {
			row := dy * w
			x0, x1 := clampLo(-hx), clampHi(hx, w-1)
			for dx := x0; dx <= x1; dx++ {
				hist.add(input[row+dx])
			}
		}
		output[y*w] = hist.median()

		for x := 1; x < w; x++ {
			leftCol := x - hx - 1
			if leftCol >= 0 {
				for dy := y0; dy <= y1; dy++ {
					hist.remove(input[dy*w+leftCol])
				}
			}
			rightCol := x + hx
			if rightCol < w {
				for dy := y0; dy <= y1; dy++ {
					hist.add(input[dy*w+rightCol])
				}
			}
			output[y*w+x] = hist.median()
		}
	}
}
