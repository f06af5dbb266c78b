package csmasim_test

//
// End-to-end scenarios exercising the full DATA/ACK and RTS/CTS
// handshakes across a complete simulation run
//

import (
	"testing"

	"github.com/bassosimone/csmasim"
	"github.com/bassosimone/csmasim/internal"
)

func runScenario(t *testing.T, mutate func(*csmasim.Config)) *csmasim.World {
	t.Helper()
	cfg := csmasim.DefaultConfig()
	cfg.Horizon = 50 * csmasim.OneSecond / 1000 // 50ms, plenty of ticks for a handful of exchanges
	cfg.FrameRate = 2000                        // aggressive offering rate so the scenario isn't empty
	if mutate != nil {
		mutate(cfg)
	}
	world := csmasim.NewWorld(cfg, &internal.NullLogger{})
	csmasim.NewMedium(world)
	world.Run()
	return world
}

func TestTwoStationExchangeProducesData(t *testing.T) {
	world := runScenario(t, func(cfg *csmasim.Config) {
		cfg.StationCount = 2
		cfg.AreaSize = 20
		cfg.DetectRange = 100
	})

	stats := csmasim.Snapshot(world)
	if stats.TotalFramesSent() == 0 {
		t.Fatal("expected at least some frames to be sent over the run")
	}

	// The sum of successfully received DATA frames can never exceed the
	// sum of sent DATA frames (spec invariant).
	var sentData, recvData int64
	for _, st := range stats.Stations {
		for _, rec := range st.Sent {
			if rec.Type == csmasim.FrameTypeData {
				sentData += rec.Count
			}
		}
		for _, rec := range st.Recv {
			if rec.Type == csmasim.FrameTypeData {
				recvData += rec.Count
			}
		}
	}
	if recvData > sentData {
		t.Fatalf("recvData=%d > sentData=%d, violates the sent/recv invariant", recvData, sentData)
	}
}

func TestStarTopologyHubCollisions(t *testing.T) {
	world := runScenario(t, func(cfg *csmasim.Config) {
		cfg.StationCount = 5
		cfg.StarTopology = true
		cfg.AreaSize = 40
		cfg.DetectRange = 100
	})

	stats := csmasim.Snapshot(world)
	// A busy star topology with many contenders is expected to produce
	// at least some collisions over the run; this is not a strict
	// invariant of every seed, but a smoke test that collisions are
	// wired at all (non-negative and counted).
	if stats.TotalCollisions() < 0 {
		t.Fatal("collision count must never be negative")
	}
}

func TestRTSCTSHandshakeRuns(t *testing.T) {
	world := runScenario(t, func(cfg *csmasim.Config) {
		cfg.StationCount = 2
		cfg.WithRTS = true
		cfg.AreaSize = 20
		cfg.DetectRange = 100
	})

	stats := csmasim.Snapshot(world)
	var sawRTS, sawCTS bool
	for _, st := range stats.Stations {
		for _, rec := range st.Sent {
			if rec.Type == csmasim.FrameTypeRTS {
				sawRTS = true
			}
			if rec.Type == csmasim.FrameTypeCTS {
				sawCTS = true
			}
		}
	}
	if !sawRTS || !sawCTS {
		t.Fatalf("expected both RTS and CTS frames over the run, sawRTS=%v sawCTS=%v", sawRTS, sawCTS)
	}
}

func TestBoundedQueueNeverExceedsCapacity(t *testing.T) {
	world := runScenario(t, func(cfg *csmasim.Config) {
		cfg.StationCount = 2
		cfg.SendQueueSize = 1
		cfg.FrameRate = 1e9 // flood offers to try to overflow the queue
	})

	for _, st := range world.Medium.Stations {
		if st.Transmitter.SendFrames.Count() > 1 {
			t.Fatalf("station %d SendFrames.Count() = %d, want <= 1", st.ID, st.Transmitter.SendFrames.Count())
		}
	}
}
