package csmasim

import "testing"

func TestStationPickPeerExcludesSelf(t *testing.T) {
	world := newTestWorld(t)
	st := world.Medium.Stations[0]

	for i := 0; i < 50; i++ {
		peer := st.pickPeer()
		if peer == nil {
			t.Fatal("pickPeer() must return a peer when more than one station exists")
		}
		if peer.ID == st.ID {
			t.Fatal("pickPeer() must never return the station itself")
		}
	}
}

func TestStationPickPeerNilWhenAlone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationCount = 1
	world := NewWorld(cfg, testLogger())
	NewMedium(world)

	if peer := world.Medium.Stations[0].pickPeer(); peer != nil {
		t.Fatal("pickPeer() must return nil when no other station exists")
	}
}

func TestStationOfferRTSFirstWhenEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationCount = 2
	cfg.WithRTS = true
	cfg.FrameRate = 1e12 // guarantee the Poisson draw offers a frame this tick
	world := NewWorld(cfg, testLogger())
	NewMedium(world)

	st := world.Medium.Stations[0]
	st.maybeOfferFrame(world.Timeline.Step)

	queued := st.Transmitter.SendFrames.Get()
	if queued == nil {
		t.Fatal("expected a frame to have been queued")
	}
	if queued.Type != FrameTypeRTS {
		t.Fatalf("queued.Type = %v, want RTS when WithRTS is enabled", queued.Type)
	}
}

func TestStationOfferDataDirectlyWithoutRTS(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StationCount = 2
	cfg.WithRTS = false
	cfg.FrameRate = 1e12
	world := NewWorld(cfg, testLogger())
	NewMedium(world)

	st := world.Medium.Stations[0]
	st.maybeOfferFrame(world.Timeline.Step)

	queued := st.Transmitter.SendFrames.Get()
	if queued == nil || queued.Type != FrameTypeData {
		t.Fatalf("queued = %v, want a DATA frame", queued)
	}
}
