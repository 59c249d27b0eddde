package median

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// interiorRect is the output-pixel rectangle owned by one tile, in global
// image coordinates, inclusive bounds.
type interiorRect struct {
	x0, y0, x1, y1 int
}

// blockSize picks the target interior tile dimensions for an image of size
// w x h given the desired worker count. Small images are handled as a
// single tile regardless of worker count, since splitting them buys no
// parallelism worth the per-tile sort overhead.
func blockSize(w, h, workers int) (bx, by int) {
	if w <= 64 && h <= 64 {
		return w, h
	}

	t := 3 * workers
	if t < 4 {
		t = 4
	}
	d := int(math.Sqrt(float64(t)))
	if d < 1 {
		d = 1
	}

	bx = ceilDiv(w, d)
	if bx < 32 {
		bx = 32
	}
	by = ceilDiv(h, d)
	if by < 32 {
		by = 32
	}

	capX := w / 2
	if capX < 64 {
		capX = 64
	}
	capY := h / 2
	if capY < 64 {
		capY = 64
	}
	if bx > capX {
		bx = capX
	}
	if by > capY {
		by = capY
	}
	return bx, by
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// tileInteriors partitions a w x h image into non-overlapping interior
// rectangles of at most bx x by, covering every pixel exactly once.
func tileInteriors(w, h, bx, by int) []interiorRect {
	var out []interiorRect
	for y0 := 0; y0 < h; y0 += by {
		y1 := y0 + by - 1
		if y1 > h-1 {
			y1 = h - 1
		}
		for x0 := 0; x0 < w; x0 += bx {
			x1 := x0 + bx - 1
			if x1 > w-1 {
				x1 = w - 1
			}
			out = append(out, interiorRect{x0, y0, x1, y1})
		}
	}
	return out
}

// run partitions a w x h image into tiles and processes them on a worker
// pool bounded to workers in-flight goroutines, writing results into
// output. It returns once every tile has completed.
func run[T Number](input, output []T, h, w, hy, hx, workers int, avg func(a, b T) T) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bx, by := blockSize(w, h, workers)
	interiors := tileInteriors(w, h, bx, by)

	g, ctx := errgroup.WithContext(context.Background())
	sem := semaphore.NewWeighted(int64(workers))

	for _, ir := range interiors {
		ir := ir
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			runTile(input, output, h, w, hx, hy, ir, avg)
			return nil
		})
	}
	return g.Wait()
}

// runTile constructs one tile's state from its inflated, clipped
// rectangle and drives the window traversal over its interior, writing
// each produced median directly into the shared output buffer.
func runTile[T Number](input, output []T, h, w, hx, hy int, ir interiorRect, avg func(a, b T) T) {
	x0b, y0b, x1b, y1b := inflate(ir.x0, ir.y0, ir.x1, ir.y1, hx, hy, w, h)
	bx := x1b - x0b + 1
	by := y1b - y0b + 1
	t := newTile(input, w, x0b, y0b, bx, by, avg)

	lx0, ly0 := ir.x0-x0b, ir.y0-y0b
	lx1, ly1 := ir.x1-x0b, ir.y1-y0b

	traverse(t, hy, hx, lx0, ly0, lx1, ly1, func(x, y int, v T) {
		output[(y+y0b)*w+(x+x0b)] = v
	})
}
