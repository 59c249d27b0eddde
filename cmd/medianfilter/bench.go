package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/Fepozopo/medianfilter/internal/log"
	"github.com/Fepozopo/medianfilter/median"
	"github.com/Fepozopo/medianfilter/refimpl"
)

// timingResult mirrors the mean/std/min/max summary the original timing
// harness computed per filter version and kernel size, reported to the
// log instead of a CSV file.
type timingResult struct {
	name        string
	kernel      int
	mean, std   time.Duration
	min, max    time.Duration
}

const benchSeed = 42
const benchReps = 5
const benchSize = 256

// runBench exercises the rank-bitmap engine against both reference
// filters across a handful of kernel sizes on a fixed-seed random image,
// reporting timing summaries. It is a sanity/performance check, not a
// correctness test — correctness is covered by the median package's own
// reference-equivalence tests.
func runBench() {
	rng := rand.New(rand.NewSource(benchSeed))
	n := benchSize * benchSize
	input := make([]uint8, n)
	for i := range input {
		input[i] = uint8(rng.Intn(256))
	}
	output := make([]uint8, n)

	versions := []struct {
		name string
		run  func(hy, hx int)
	}{
		{"ranked-bitmap", func(hy, hx int) {
			_ = median.Uint8(input, output, benchSize, benchSize, hy, hx)
		}},
		{"full-sort", func(hy, hx int) {
			refimpl.FullSortUint8(input, output, benchSize, benchSize, hy, hx)
		}},
		{"histogram", func(hy, hx int) {
			refimpl.HistogramUint8(input, output, benchSize, benchSize, hy, hx)
		}},
	}

	for _, kernel := range []int{1, 3, 7, 15} {
		for _, v := range versions {
			r := timeVersion(v.name, kernel, v.run)
			log.Infof("%-14s kernel=%-3d mean=%-12s std=%-10s min=%-12s max=%s",
				r.name, r.kernel, r.mean, r.std, r.min, r.max)
		}
	}
}

func timeVersion(name string, kernel int, run func(hy, hx int)) timingResult {
	samples := make([]time.Duration, benchReps)
	for i := 0; i < benchReps; i++ {
		start := time.Now()
		run(kernel, kernel)
		samples[i] = time.Since(start)
	}

	var sum time.Duration
	min, max := samples[0], samples[0]
	for _, s := range samples {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	mean := sum / time.Duration(benchReps)

	var variance float64
	for _, s := range samples {
		d := float64(s - mean)
		variance += d * d
	}
	variance /= float64(benchReps)
	std := time.Duration(math.Sqrt(variance))

	return timingResult{name: name, kernel: kernel, mean: mean, std: std, min: min, max: max}
}
