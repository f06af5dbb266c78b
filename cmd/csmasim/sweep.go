package main

//
// Parameter sweep orchestration: sequential with a progress bar, or
// fanned out across a bounded goroutine pool with --multiprocess
//

import (
	"context"

	"github.com/apex/log"
	"github.com/bassosimone/csmasim"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

const multiprocessPoolSize = 4

// tupleFunc runs a single configuration tuple to completion, however the
// caller chooses to account for its results.
type tupleFunc func(cfg *csmasim.Config) error

// runSweepSequentialFn runs every tuple one at a time through run,
// reporting progress on a [progressbar.ProgressBar], mirroring the
// original tool's tqdm-wrapped loop.
func runSweepSequentialFn(tuples []*csmasim.Config, run tupleFunc) error {
	bar := progressbar.Default(int64(len(tuples)), "simulating")
	defer bar.Close()

	for _, cfg := range tuples {
		if err := run(cfg); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	return nil
}

// runSweepMultiprocessFn fans tuples out across a bounded pool of
// goroutines (the Go-idiomatic rendition of the original tool's
// process_map worker-process pool: each tuple owns an independent
// [csmasim.World] with no shared mutable state, so goroutines already
// give the isolation that separate processes gave the original).
func runSweepMultiprocessFn(tuples []*csmasim.Config, run tupleFunc) error {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(multiprocessPoolSize)

	for _, cfg := range tuples {
		cfg := cfg
		g.Go(func() error {
			return run(cfg)
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("csmasim: sweep tuple failed")
		return err
	}
	return nil
}
