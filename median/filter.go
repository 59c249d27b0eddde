// Package median implements a two-dimensional median filter over dense
// single-channel images using a ranked-bitmap sliding-window engine: each
// tile sorts its pixels once into a rank table, then a serpentine traversal
// maintains a fixed-width bitmap index of "which ranks are inside the
// current kernel window", querying the median in O(1) amortized time per
// output pixel.
package median

import (
	"fmt"
	"runtime"
)

// options holds the resolved runtime configuration for one filter call.
type options struct {
	workers int
}

// Option configures a filter call.
type Option func(*options)

// WithWorkers sets the number of tiles processed concurrently. The default
// is runtime.GOMAXPROCS(0). It affects performance only, never the result.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func resolveOptions(opts []Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validate(inputLen, outputLen, h, w, hy, hx int) error {
	if h < 1 || w < 1 {
		return fmt.Errorf("median: image dimensions must be >= 1, got h=%d w=%d", h, w)
	}
	if hy < 0 || hx < 0 {
		return fmt.Errorf("median: kernel half-extents must be >= 0, got hy=%d hx=%d", hy, hx)
	}
	if inputLen != h*w {
		return fmt.Errorf("median: input length %d does not match h*w=%d", inputLen, h*w)
	}
	if outputLen != h*w {
		return fmt.Errorf("median: output length %d does not match h*w=%d", outputLen, h*w)
	}
	return nil
}

func sameBacking[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

func avgFloat32(a, b float32) float32 {
	return (a + b) / 2
}

func avgUint8(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) / 2)
}

// Float32 writes to output the median filter of input over an H x W
// floating-point image, using a kernel of half-extents (hy, hx). Even-sized
// windows average their two middle values. input and output must be
// distinct, equal-length row-major buffers of H*W elements.
func Float32(input, output []float32, h, w, hy, hx int, opts ...Option) error {
	if err := validate(len(input), len(output), h, w, hy, hx); err != nil {
		return err
	}
	if sameBacking(input, output) {
		return fmt.Errorf("median: input and output must not alias")
	}
	o := resolveOptions(opts)
	return run(input, output, h, w, hy, hx, o.workers, avgFloat32)
}

// Uint8 writes to output the median filter of input over an H x W 8-bit
// image, using a kernel of half-extents (hy, hx). Even-sized windows
// average their two middle values, rounding half up. input and output must
// be distinct, equal-length row-major buffers of H*W elements.
func Uint8(input, output []uint8, h, w, hy, hx int, opts ...Option) error {
	if err := validate(len(input), len(output), h, w, hy, hx); err != nil {
		return err
	}
	if sameBacking(input, output) {
		return fmt.Errorf("median: input and output must not alias")
	}
	o := resolveOptions(opts)
	return run(input, output, h, w, hy, hx, o.workers, avgUint8)
}
