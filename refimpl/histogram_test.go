package refimpl

import "testing"

func TestHistogramUint8MatchesFullSort(t *testing.T) {
	h, w := 20, 17
	input := make([]uint8, h*w)
	for i := range input {
		input[i] = uint8((i*53 + 7) % 256)
	}

	for _, k := range []struct{ hy, hx int }{{0, 0}, {1, 1}, {2, 3}, {5, 0}} {
		want := make([]uint8, h*w)
		got := make([]uint8, h*w)
		FullSortUint8(input, want, h, w, k.hy, k.hx)
		HistogramUint8(input, got, h, w, k.hy, k.hx)

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("hy=%d hx=%d: output[%d] = %d, want %d", k.hy, k.hx, i, got[i], want[i])
			}
		}
	}
}

func TestHistogramUint8NoiseSpike(t *testing.T) {
	h, w := 9, 9
	input := make([]uint8, h*w)
	for i := range input {
		input[i] = 100
	}
	input[4*w+4] = 255
	output := make([]uint8, h*w)
	HistogramUint8(input, output, h, w, 1, 1)
	for i, v := range output {
		if v != 100 {
			t.Fatalf("output[%d] = %d, want 100", i, v)
		}
	}
}
