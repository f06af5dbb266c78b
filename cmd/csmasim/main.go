// Command csmasim runs a CSMA/CA wireless medium-access simulation, either
// as a single default run or as a parameter sweep written to CSV files.
package main

import (
	"sync/atomic"

	"github.com/apex/log"
	"github.com/bassosimone/csmasim"
	"github.com/bassosimone/csmasim/internal"
	"github.com/spf13/pflag"
)

func main() {
	var (
		simulation   = pflag.Bool("simulation", false, "iterate over the parameter sweep instead of a single run")
		passDone     = pflag.Bool("pass-done", false, "skip tuples whose result file already exists")
		multiprocess = pflag.Bool("multiprocess", false, "distribute the sweep across a pool of goroutines")
		configPath   = pflag.String("config", "", "YAML config overriding the default single-run settings")
		metricsAddr  = pflag.String("metrics-addr", "", "serve Prometheus metrics on this address while a sweep runs")
		visualizeTo  = pflag.String("visualize", "", "write an HTML station-layout snapshot to this path after a single run")
		resultsDir   = pflag.String("results-dir", "results", "directory for --simulation's CSV result files")
	)
	pflag.Parse()

	if !*simulation {
		runSingle(*configPath, *visualizeTo)
		return
	}

	runSweep(*resultsDir, *passDone, *multiprocess, *metricsAddr)
}

// runSingle performs one simulation run using [csmasim.DefaultConfig],
// overridden by configPath when given, and optionally writes an HTML
// visualization of the final layout.
func runSingle(configPath, visualizeTo string) {
	cfg := csmasim.DefaultConfig()
	if configPath != "" {
		loaded, err := csmasim.LoadConfig(configPath)
		if err != nil {
			log.WithError(err).Fatal("csmasim: loading config")
		}
		cfg = loaded
	}

	var logger csmasim.Logger = &internal.NullLogger{}
	if cfg.Log {
		logger = log.Log
	}

	world := csmasim.NewWorld(cfg, logger)
	csmasim.NewMedium(world)
	world.Run()

	stats := csmasim.Snapshot(world)
	log.Infof("csmasim: sent=%d collisions=%d wasted_ns=%d",
		stats.TotalFramesSent(), stats.TotalCollisions(), stats.TotalWasted())

	if visualizeTo != "" {
		if err := writeVisualization(world, visualizeTo); err != nil {
			log.WithError(err).Fatal("csmasim: writing visualization")
		}
	}
}

// runSweep runs every tuple in [variousSettings], optionally in parallel
// and optionally exposing running totals via Prometheus.
func runSweep(resultsDir string, passDone, multiprocess bool, metricsAddr string) {
	tuples := variousSettings()

	var totalSent, totalCollisions, totalWasted int64
	if metricsAddr != "" {
		collector := newMetricsCollector(func() (float64, float64, float64) {
			return float64(atomic.LoadInt64(&totalSent)),
				float64(atomic.LoadInt64(&totalCollisions)),
				float64(atomic.LoadInt64(&totalWasted))
		})
		serveMetrics(metricsAddr, collector)
	}

	run := func(cfg *csmasim.Config) error {
		if passDone && resultExists(resultsDir, cfg) {
			return nil
		}
		world := csmasim.NewWorld(cfg, &internal.NullLogger{})
		csmasim.NewMedium(world)
		world.Run()
		stats := csmasim.Snapshot(world)
		atomic.AddInt64(&totalSent, stats.TotalFramesSent())
		atomic.AddInt64(&totalCollisions, stats.TotalCollisions())
		atomic.AddInt64(&totalWasted, stats.TotalWasted())
		return writeResult(resultsDir, cfg, stats)
	}

	var err error
	if multiprocess {
		err = runSweepMultiprocessFn(tuples, run)
	} else {
		err = runSweepSequentialFn(tuples, run)
	}
	if err != nil {
		log.WithError(err).Fatal("csmasim: sweep failed")
	}
}
