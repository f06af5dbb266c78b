package csmasim

//
// Explicit per-run context, replacing ambient/global lookup
//

import (
	"math/rand"

	"github.com/google/uuid"
)

// World ties together a [Config], a [Logger], a [Timeline], and a
// [Medium] for a single simulation run. Every constructor in this
// package that needs shared context takes a *World rather than reaching
// for a global container, so that independent runs (e.g. a parameter
// sweep executed by several goroutines) never share mutable state.
type World struct {
	// Config is this run's configuration.
	Config *Config

	// Logger is this run's logger.
	Logger Logger

	// Timeline is this run's logical clock.
	Timeline *Timeline

	// Medium is this run's shared broadcast medium.
	Medium *Medium

	// Rand is this run's pseudo-random number generator. Every source of
	// randomness in a run (station placement, frame offers and peer
	// choice, backoff draws) must use this generator so that a given seed
	// reproduces a bit-identical run. Frame ids are not random; see
	// [World.NewFrameID].
	Rand *rand.Rand

	// RunSalt is a random per-run identifier derived from a UUID. Frame
	// ids do not incorporate it, and it has no bearing on a single run's
	// internal determinism.
	RunSalt uint64

	nextFrameID uint64
}

// NewWorld creates a [World] for cfg, wiring a fresh [Timeline] ticking at
// cfg.SlotTime up to cfg.Horizon. The caller is responsible for attaching
// a [Medium] via [NewMedium].
func NewWorld(cfg *Config, logger Logger) *World {
	return &World{
		Config:      cfg,
		Logger:      logger,
		Timeline:    NewTimeline(cfg.SlotTime, cfg.Horizon),
		Medium:      nil,
		Rand:        rand.New(rand.NewSource(cfg.Seed)),
		RunSalt:     uint64(uuid.New().ID()),
		nextFrameID: 0,
	}
}

// NewFrameID returns a fresh, monotonically increasing frame id, per the
// implementation note that ids should prefer monotonicity over uniform
// random sampling (which risks collisions).
func (w *World) NewFrameID() uint64 {
	w.nextFrameID++
	return w.nextFrameID
}

// Run runs the simulation to completion, i.e. until the [Timeline]
// reaches its horizon.
func (w *World) Run() {
	if w.Config.Log {
		w.Timeline.SetAfterTick(func(tl *Timeline) {
			w.Logger.Debugf("csmasim: tick=%d stations=%d frames=%d",
				tl.Current, len(w.Medium.Stations), len(w.Medium.Frames))
		})
	}
	w.Timeline.Run()
}
