// Command medianfilter is a small test harness around package median: it
// loads a grayscale image, runs the ranked-bitmap filter, and writes the
// result back out. It is not an argument-parsing framework — just enough
// flags to exercise the engine from the command line.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Fepozopo/medianfilter/internal/config"
	"github.com/Fepozopo/medianfilter/internal/log"
	"github.com/Fepozopo/medianfilter/median"
)

func main() {
	var (
		hy        = flag.Int("hy", 2, "kernel vertical half-extent")
		hx        = flag.Int("hx", 2, "kernel horizontal half-extent")
		out       = flag.String("o", "out.png", "output image path")
		workers   = flag.Int("workers", 0, "worker count (0 = from MEDIANFILTER_WORKERS or host concurrency)")
		timed     = flag.Bool("time", false, "report elapsed filter time")
		benchFlag = flag.Bool("bench", false, "run the synthetic timing harness instead of filtering a file")
		update    = flag.Bool("update", false, "check GitHub for a newer release and offer to install it")
	)
	flag.Parse()

	if err := log.Init(config.LogLevel()); err != nil {
		fmt.Fprintf(os.Stderr, "medianfilter: logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *update {
		if err := checkForUpdates(); err != nil {
			log.Errorf("update check failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if *benchFlag {
		runBench()
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: medianfilter [flags] <input-image>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	n := *workers
	if n <= 0 {
		n = config.Workers(0)
	}

	in := flag.Arg(0)
	pix, w, h, err := loadGray(in)
	if err != nil {
		log.Fatalf("load %s: %v", in, err)
	}

	result := make([]uint8, len(pix))

	start := time.Now()
	var opts []median.Option
	if n > 0 {
		opts = append(opts, median.WithWorkers(n))
	}
	if err := median.Uint8(pix, result, h, w, *hy, *hx, opts...); err != nil {
		log.Fatalf("filter: %v", err)
	}
	elapsed := time.Since(start)

	if *timed {
		log.Infof("filtered %dx%d image (hy=%d hx=%d) in %s", w, h, *hy, *hx, elapsed)
	}

	if err := saveGray(*out, result, w, h); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
}
