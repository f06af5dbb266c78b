package csmasim

import (
	"testing"
)

func TestNewMediumStarTopologyPlacesHubAtCenter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationCount = 4
	cfg.StarTopology = true
	world := NewWorld(cfg, testLogger())
	NewMedium(world)

	hub := world.Medium.Stations[0]
	center := Point{X: float64(cfg.AreaSize) / 2, Y: float64(cfg.AreaSize) / 2}
	if hub.Location != center {
		t.Fatalf("hub location = %v, want %v", hub.Location, center)
	}

	for i := 1; i < len(world.Medium.Stations); i++ {
		leaf := world.Medium.Stations[i]
		d := Distance(leaf.Location, center)
		want := float64(cfg.AreaSize) / 2 * 0.9
		if d < want-1e-6 || d > want+1e-6 {
			t.Fatalf("leaf %d distance from hub = %f, want %f", i, d, want)
		}
	}
}

func TestMediumDeliversFrameOnlyOnce(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationCount = 2
	cfg.AreaSize = 10
	cfg.DetectRange = 100
	cfg.PropagationSpeed = 1
	world := NewWorld(cfg, testLogger())
	NewMedium(world)

	sender := world.Medium.Stations[0]
	receiver := world.Medium.Stations[1]

	frame := sendDataFrame(world, sender, receiver)
	frame.Depart()

	// Run enough ticks that the propagation front easily reaches the
	// receiver (at 1 m/ns, 20 ticks cover the 10x10 area's ~14.2 m
	// diagonal), but stop before the frame would vanish.
	for i := 0; i < 20; i++ {
		world.Medium.OnTickInit(1)
		world.Timeline.Current++
	}
	count := receiver.Transmitter.DetectedFrames.Count()
	if count != 1 {
		t.Fatalf("DetectedFrames.Count() = %d, want exactly 1 delivery", count)
	}

	world.Medium.OnTickInit(1) // delivering again must be a no-op
	if receiver.Transmitter.DetectedFrames.Count() != count {
		t.Fatal("a frame must be delivered to a station at most once")
	}
}

func TestMediumVanishesFramesPastMaxRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationCount = 2
	cfg.DetectRange = 1
	cfg.PropagationSpeed = 1
	world := NewWorld(cfg, testLogger())
	NewMedium(world)

	sender := world.Medium.Stations[0]
	receiver := world.Medium.Stations[1]
	frame := sendDataFrame(world, sender, receiver)
	frame.Depart()

	world.Timeline.Current += 100 // far beyond MaxRange/PropagationSpeed
	world.Medium.OnTick(1)

	if !frame.HasVanished() {
		t.Fatal("a frame whose front has passed MaxRange must vanish")
	}
	if len(world.Medium.Frames) != 0 {
		t.Fatal("a vanished frame must be unregistered from the medium")
	}
}

func sendDataFrame(world *World, sender, receiver *Station) *Frame {
	return AssembleFrame(world, sender, receiver, FrameTypeData, noneDuration())
}
